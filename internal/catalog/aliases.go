package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mazecache/internal/textutil"
)

// FindAlias returns the alias recorded for a search title, matching
// case-insensitively, or nil when none exists. Keys are stored folded so the
// lookup is a plain equality scan.
func (t *Tx) FindAlias(ctx context.Context, title string) (*Alias, error) {
	ctx = ensureContext(ctx)
	key := textutil.FoldName(title)
	if key == "" {
		return nil, nil
	}

	alias := &Alias{}
	err := t.tx.QueryRowContext(ctx,
		"SELECT id, search_name, series_id FROM series_aliases WHERE search_name = ?",
		key,
	).Scan(&alias.ID, &alias.SearchName, &alias.SeriesID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find alias %q: %w", key, err)
	}
	return alias, nil
}

// CreateAlias records that a search title resolved to a series. The title is
// folded before storage; inserting a duplicate key fails on the unique index.
func (t *Tx) CreateAlias(ctx context.Context, title string, seriesID int64) error {
	ctx = ensureContext(ctx)
	key := textutil.FoldName(title)
	if key == "" {
		return fmt.Errorf("create alias: empty search name")
	}

	if _, err := t.tx.ExecContext(ctx,
		"INSERT INTO series_aliases (search_name, series_id) VALUES (?, ?)",
		key, seriesID,
	); err != nil {
		return fmt.Errorf("create alias %q: %w", key, err)
	}
	return nil
}

// Aliases lists every recorded alias joined with its series name.
func (s *Store) Aliases(ctx context.Context) ([]AliasEntry, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `
        SELECT a.search_name, a.series_id, COALESCE(se.name, '')
        FROM series_aliases a
        JOIN series se ON se.tvmaze_id = a.series_id
        ORDER BY a.search_name`)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	defer rows.Close()

	var entries []AliasEntry
	for rows.Next() {
		var entry AliasEntry
		if err := rows.Scan(&entry.SearchName, &entry.SeriesID, &entry.SeriesName); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aliases: %w", err)
	}
	return entries, nil
}

// AliasesForSeries lists the aliases recorded for one series.
func (s *Store) AliasesForSeries(ctx context.Context, seriesID int64) ([]AliasEntry, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `
        SELECT a.search_name, a.series_id, COALESCE(se.name, '')
        FROM series_aliases a
        JOIN series se ON se.tvmaze_id = a.series_id
        WHERE a.series_id = ?
        ORDER BY a.search_name`, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list aliases for series %d: %w", seriesID, err)
	}
	defer rows.Close()

	var entries []AliasEntry
	for rows.Next() {
		var entry AliasEntry
		if err := rows.Scan(&entry.SearchName, &entry.SeriesID, &entry.SeriesName); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aliases: %w", err)
	}
	return entries, nil
}
