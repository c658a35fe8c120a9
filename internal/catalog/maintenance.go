package catalog

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Stats reports cache contents. Series whose last refresh predates staleBefore
// (or that never recorded one) count as stale.
func (s *Store) Stats(ctx context.Context, staleBefore time.Time) (Stats, error) {
	ctx = ensureContext(ctx)
	stats := Stats{DatabasePath: s.path}

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(1) FROM series", &stats.Series},
		{"SELECT COUNT(1) FROM episodes", &stats.Episodes},
		{"SELECT COUNT(1) FROM genres", &stats.Genres},
		{"SELECT COUNT(1) FROM series_aliases", &stats.Aliases},
	}
	for _, count := range counts {
		if err := s.db.QueryRowContext(ctx, count.query).Scan(count.dest); err != nil {
			return Stats{}, fmt.Errorf("count cache rows: %w", err)
		}
	}

	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM series WHERE last_refreshed IS NULL OR last_refreshed < ?",
		staleBefore.UTC().Format(time.RFC3339Nano),
	).Scan(&stats.StaleSeries); err != nil {
		return Stats{}, fmt.Errorf("count stale series: %w", err)
	}

	if info, err := os.Stat(s.path); err == nil {
		stats.DatabaseBytes = info.Size()
	}
	return stats, nil
}
