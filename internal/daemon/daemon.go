package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mazecache/internal/catalog"
	"mazecache/internal/config"
	"mazecache/internal/logging"
	"mazecache/internal/preflight"
	"mazecache/internal/resolve"
)

// Daemon coordinates the lookup service lifecycle and enforces
// single-instance execution.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger

	store    *catalog.Store
	resolver *resolve.Resolver
	api      *apiServer

	lockPath  string
	lock      *flock.Flock
	runID     string
	startedAt time.Time

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// Status is a point-in-time snapshot of the daemon and its cache counters.
type Status struct {
	Running      bool
	PID          int
	RunID        string
	StartedAt    time.Time
	LockFilePath string
	Cache        catalog.Stats
}

// New constructs a daemon. The store and resolver are created during Start,
// after preflight has vetted the configured directories.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || logger == nil {
		return nil, errors.New("daemon requires config and logger")
	}

	lockPath := filepath.Join(cfg.Paths.LogDir, "mazecached.lock")
	return &Daemon{
		cfg:      cfg,
		logger:   logger,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
		runID:    uuid.NewString(),
	}, nil
}

// Start acquires the daemon lock, runs preflight checks, opens the cache
// store, and brings up the API server.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon is already running")
	}

	if err := d.cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("prepare directories: %w", err)
	}
	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another mazecached instance is already running")
	}

	results := preflight.Run(d.cfg)
	for _, result := range results {
		d.logResult(result)
	}
	if failed := preflight.FirstFailure(results); failed != nil {
		_ = d.lock.Unlock()
		return fmt.Errorf("preflight check %q failed: %s", failed.Name, failed.Detail)
	}

	store, err := catalog.Open(d.cfg)
	if err != nil {
		_ = d.lock.Unlock()
		return fmt.Errorf("open cache store: %w", err)
	}
	resolver, err := resolve.NewResolver(d.cfg, store, d.logger)
	if err != nil {
		_ = store.Close()
		_ = d.lock.Unlock()
		return fmt.Errorf("build resolver: %w", err)
	}
	d.store = store
	d.resolver = resolver

	d.ctx, d.cancel = context.WithCancel(ctx)
	server, err := newAPIServer(d.cfg, d, d.logger)
	if err != nil {
		d.teardown()
		return fmt.Errorf("configure api server: %w", err)
	}
	d.api = server
	if err := d.api.start(d.ctx); err != nil {
		d.teardown()
		return err
	}

	d.startedAt = time.Now().UTC()
	d.running.Store(true)
	d.logger.Info("mazecached started",
		logging.String("lock", d.lockPath),
		logging.String("run_id", d.runID),
		logging.String("database", d.cfg.DatabasePath()))
	return nil
}

// Stop shuts down the API server, closes the store, and releases the lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.api.stop()
	d.api = nil
	d.teardown()
	d.ctx = nil
	d.running.Store(false)
	d.logger.Info("mazecached stopped")
}

// Close stops the daemon if it is still running.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

func (d *Daemon) teardown() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			d.logger.Warn("failed to close cache store", logging.Error(err))
		}
		d.store = nil
	}
	d.resolver = nil
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("could not release daemon lock", logging.Error(err))
	}
}

// Status returns the current daemon status including cache statistics.
func (d *Daemon) Status(ctx context.Context) (Status, error) {
	status := Status{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		RunID:        d.runID,
		StartedAt:    d.startedAt,
		LockFilePath: d.lockPath,
	}
	if d.store == nil {
		return status, nil
	}
	stats, err := d.store.Stats(ctx, time.Now().Add(-d.cfg.RefreshInterval()))
	if err != nil {
		return status, fmt.Errorf("collect cache stats: %w", err)
	}
	status.Cache = stats
	return status, nil
}

func (d *Daemon) logResult(result preflight.Result) {
	attrs := []logging.Attr{
		logging.String("check", result.Name),
		logging.Bool("passed", result.Passed),
	}
	if result.Detail != "" {
		attrs = append(attrs, logging.String("detail", result.Detail))
	}
	switch {
	case result.Passed:
		d.logger.Debug("preflight check passed", logging.Args(attrs...)...)
	case result.Optional:
		attrs = append(attrs, logging.Alert("degraded"))
		d.logger.Warn("preflight check degraded", logging.Args(attrs...)...)
	default:
		d.logger.Error("preflight check failed", logging.Args(attrs...)...)
	}
}
