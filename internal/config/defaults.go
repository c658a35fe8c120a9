package config

const (
	defaultDataDir             = "~/.local/share/mazecache"
	defaultLogDir              = "~/.local/share/mazecache/logs"
	defaultAPIBind             = "127.0.0.1:7417"
	defaultTVMazeBaseURL       = "https://api.tvmaze.com"
	defaultTVMazeTimeout       = 30
	defaultTVMazeUserAgent     = "mazecache/dev"
	defaultRefreshIntervalDays = 7
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultLogRetentionDays    = 60
)

// Default returns the config used when no file is present. Every field is
// valid on its own, so a bare "mazecached" run works out of the box.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		TVMaze: TVMaze{
			BaseURL:        defaultTVMazeBaseURL,
			TimeoutSeconds: defaultTVMazeTimeout,
			UserAgent:      defaultTVMazeUserAgent,
		},
		Cache: Cache{
			RefreshIntervalDays: defaultRefreshIntervalDays,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
