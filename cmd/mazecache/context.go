package main

import (
	"strings"
	"sync"

	"mazecache/internal/catalog"
	"mazecache/internal/config"
	"mazecache/internal/logging"
	"mazecache/internal/resolve"
)

type cmdEnv struct {
	pathFlag *string

	once    sync.Once
	cfg     *config.Config
	loadErr error
}

func newCmdEnv(pathFlag *string) *cmdEnv {
	return &cmdEnv{
		pathFlag: pathFlag,
	}
}

// configPath returns the raw --config flag value, if any.
func (c *cmdEnv) configPath() string {
	if c.pathFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.pathFlag)
}

func (c *cmdEnv) loadConfig() (*config.Config, error) {
	c.once.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.loadErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.loadErr = err
			return
		}
		c.cfg = cfg
	})
	return c.cfg, c.loadErr
}

// withStore opens the cache database for the duration of fn. The store is
// shared with any running daemon through SQLite's own locking, so one-shot
// commands need no daemon to be up.
func (c *cmdEnv) withStore(fn func(cfg *config.Config, store *catalog.Store) error) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(cfg, store)
}

// withResolver builds a full resolution engine around the store. CLI lookups
// log nowhere; failures surface as command errors instead.
func (c *cmdEnv) withResolver(fn func(cfg *config.Config, store *catalog.Store, resolver *resolve.Resolver) error) error {
	return c.withStore(func(cfg *config.Config, store *catalog.Store) error {
		resolver, err := resolve.NewResolver(cfg, store, logging.NewNop())
		if err != nil {
			return err
		}
		return fn(cfg, store, resolver)
	})
}
