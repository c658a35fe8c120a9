package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// EnsureGenre returns the ID of the named genre, creating the row on first
// use. Genre rows are shared across series and never deleted.
func (t *Tx) EnsureGenre(ctx context.Context, name string) (int64, error) {
	ctx = ensureContext(ctx)

	var id int64
	err := t.tx.QueryRowContext(ctx, "SELECT id FROM genres WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("look up genre %q: %w", name, err)
	}

	res, err := t.tx.ExecContext(ctx, "INSERT INTO genres (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("create genre %q: %w", name, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("genre id for %q: %w", name, err)
	}
	return id, nil
}

// ReplaceSeriesGenres rewrites the genre set attached to a series.
func (t *Tx) ReplaceSeriesGenres(ctx context.Context, seriesID int64, genreIDs []int64) error {
	ctx = ensureContext(ctx)

	if _, err := t.tx.ExecContext(ctx, "DELETE FROM series_genres WHERE series_id = ?", seriesID); err != nil {
		return fmt.Errorf("clear genres for series %d: %w", seriesID, err)
	}
	for _, genreID := range genreIDs {
		if _, err := t.tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO series_genres (series_id, genre_id) VALUES (?, ?)",
			seriesID, genreID,
		); err != nil {
			return fmt.Errorf("attach genre %d to series %d: %w", genreID, seriesID, err)
		}
	}
	return nil
}

// SeriesGenres returns the genre names attached to a series in stable order.
func (t *Tx) SeriesGenres(ctx context.Context, seriesID int64) ([]string, error) {
	return seriesGenres(ensureContext(ctx), t.tx, seriesID)
}

func seriesGenres(ctx context.Context, q querier, seriesID int64) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
        SELECT g.name
        FROM genres g
        JOIN series_genres sg ON sg.genre_id = g.id
        WHERE sg.series_id = ?
        ORDER BY g.name`, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list genres for series %d: %w", seriesID, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres: %w", err)
	}
	return names, nil
}
