package preflight

import (
	"mazecache/internal/config"
)

// Result reports the outcome of a single preflight check. Optional checks
// may fail without blocking daemon start.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// Run executes all preflight checks for the given config.
func Run(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
		CheckDiskSpace("Data disk space", cfg.Paths.DataDir),
		CheckBindAddress("API bind address", cfg.Paths.APIBind),
	}
}

// FirstFailure returns the first failed required check, or nil when the
// daemon is clear to start.
func FirstFailure(results []Result) *Result {
	for i := range results {
		if !results[i].Passed && !results[i].Optional {
			return &results[i]
		}
	}
	return nil
}
