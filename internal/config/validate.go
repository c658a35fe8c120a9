package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate rejects settings the daemon or CLI could not run with.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTVMaze(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.APIBind == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(c.Paths.APIBind); err != nil {
		return fmt.Errorf("paths.api_bind must be host:port: %w", err)
	}
	return nil
}

func (c *Config) validateTVMaze() error {
	base := c.TVMaze.BaseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return fmt.Errorf("tvmaze.base_url must start with http:// or https://, got %q", base)
	}
	if c.TVMaze.TimeoutSeconds <= 0 {
		return errors.New("tvmaze.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.RefreshIntervalDays <= 0 {
		return errors.New("cache.refresh_interval_days must be positive")
	}
	return nil
}
