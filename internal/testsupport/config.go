package testsupport

import (
	"path/filepath"
	"testing"

	"mazecache/internal/config"
)

// ConfigOption mutates the config returned by NewConfig.
type ConfigOption func(*config.Config)

// NewConfig returns a config whose data and log directories live under the
// test's temp dir and whose API server binds an ephemeral port.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	base := t.TempDir()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithBaseURL points the provider client at a test server.
func WithBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TVMaze.BaseURL = url
	}
}

// WithRefreshIntervalDays overrides the cache staleness window.
func WithRefreshIntervalDays(days int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cache.RefreshIntervalDays = days
	}
}
