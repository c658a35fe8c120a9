package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// CleanupOldLogs prunes ".log" files under dir that are older than
// retentionDays, skipping the active log file. A retentionDays value of 0
// disables pruning. Returns the number of files removed.
func CleanupOldLogs(logger *slog.Logger, dir, activePath string, retentionDays int) int {
	if retentionDays <= 0 || dir == "" {
		return 0
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	active, _ := filepath.Abs(activePath)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	pruned := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if abs, err := filepath.Abs(path); err == nil && abs == active {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			WarnWithContext(logger, "log retention remove failed", "log_prune_failed",
				String("path", path),
				Error(err),
				String(FieldErrorHint, "check log_dir ownership and permissions"),
				String(FieldImpact, "expired log file stays on disk"))
			continue
		}
		pruned++
	}

	if pruned > 0 && logger != nil {
		logger.Info("pruned old logs",
			Int("files", pruned),
			String(FieldEventType, "logs_pruned"))
	}
	return pruned
}
