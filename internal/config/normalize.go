package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTVMaze()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	// An explicitly empty api_bind disables the HTTP API; the default value
	// comes from Default() when the key is absent.
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	return nil
}

func (c *Config) normalizeTVMaze() {
	if value, ok := os.LookupEnv("TVMAZE_BASE_URL"); ok && strings.TrimSpace(value) != "" {
		c.TVMaze.BaseURL = value
	}
	c.TVMaze.BaseURL = strings.TrimRight(strings.TrimSpace(c.TVMaze.BaseURL), "/")
	if c.TVMaze.BaseURL == "" {
		c.TVMaze.BaseURL = defaultTVMazeBaseURL
	}
	if c.TVMaze.TimeoutSeconds <= 0 {
		c.TVMaze.TimeoutSeconds = defaultTVMazeTimeout
	}
	c.TVMaze.UserAgent = strings.TrimSpace(c.TVMaze.UserAgent)
	if c.TVMaze.UserAgent == "" {
		c.TVMaze.UserAgent = defaultTVMazeUserAgent
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format != "json" {
		format = "console"
	}
	c.Logging.Format = format

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.RetentionDays = max(c.Logging.RetentionDays, 0)
}
