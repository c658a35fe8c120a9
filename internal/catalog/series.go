package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"mazecache/internal/services"
)

// FindSeries returns the first cached series matching any populated filter
// field, or nil when nothing matches. An all-empty filter is rejected so a
// blank lookup can never pin the first row in the table.
func (t *Tx) FindSeries(ctx context.Context, filter SeriesFilter) (*Series, error) {
	ctx = ensureContext(ctx)
	if filter.empty() {
		return nil, services.Wrap(services.ErrInvalidQuery, "catalog", "find series", "no usable search parameters", nil)
	}

	clauses := make([]string, 0, 4)
	args := make([]any, 0, 4)
	if filter.TVMazeID != 0 {
		clauses = append(clauses, "tvmaze_id = ?")
		args = append(args, filter.TVMazeID)
	}
	if filter.TVDBID != 0 {
		clauses = append(clauses, "tvdb_id = ?")
		args = append(args, filter.TVDBID)
	}
	if filter.TVRageID != 0 {
		clauses = append(clauses, "tvrage_id = ?")
		args = append(args, filter.TVRageID)
	}
	if filter.Name != "" {
		clauses = append(clauses, "name = ?")
		args = append(args, filter.Name)
	}

	query := fmt.Sprintf("SELECT %s FROM series WHERE %s LIMIT 1", seriesColumns, strings.Join(clauses, " OR "))
	series, err := scanSeries(t.tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find series: %w", err)
	}
	return series, nil
}

// SeriesByID returns the cached series with the given TVMaze ID, or nil when
// it is not cached.
func (t *Tx) SeriesByID(ctx context.Context, tvmazeID int64) (*Series, error) {
	return seriesByID(ensureContext(ctx), t.tx, tvmazeID)
}

func seriesByID(ctx context.Context, q querier, tvmazeID int64) (*Series, error) {
	query := fmt.Sprintf("SELECT %s FROM series WHERE tvmaze_id = ?", seriesColumns)
	series, err := scanSeries(q.QueryRowContext(ctx, query, tvmazeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load series %d: %w", tvmazeID, err)
	}
	return series, nil
}

// CreateSeries inserts a new series row.
func (t *Tx) CreateSeries(ctx context.Context, series *Series) error {
	ctx = ensureContext(ctx)
	_, err := t.tx.ExecContext(ctx, `
        INSERT INTO series (`+seriesColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seriesArgs(series)...,
	)
	if err != nil {
		return fmt.Errorf("create series %d: %w", series.TVMazeID, err)
	}
	return nil
}

// UpdateSeries overwrites every mutable column of an existing series row.
func (t *Tx) UpdateSeries(ctx context.Context, series *Series) error {
	ctx = ensureContext(ctx)
	_, err := t.tx.ExecContext(ctx, `
        UPDATE series
        SET name = ?, status = ?, rating = ?, weight = ?, updated = ?,
            language = ?, schedule_json = ?, url = ?, original_image = ?,
            medium_image = ?, tvdb_id = ?, tvrage_id = ?, premiered = ?,
            summary = ?, webchannel = ?, runtime = ?, show_type = ?,
            network = ?, last_refreshed = ?
        WHERE tvmaze_id = ?`,
		append(seriesArgs(series)[1:], series.TVMazeID)...,
	)
	if err != nil {
		return fmt.Errorf("update series %d: %w", series.TVMazeID, err)
	}
	return nil
}

func seriesArgs(series *Series) []any {
	return []any{
		series.TVMazeID,
		nullableString(series.Name),
		nullableString(series.Status),
		series.Rating,
		series.Weight,
		nullableTime(series.Updated),
		nullableString(series.Language),
		nullableString(series.ScheduleJSON),
		nullableString(series.URL),
		nullableString(series.OriginalImage),
		nullableString(series.MediumImage),
		nullableInt64(series.TVDBID),
		nullableInt64(series.TVRageID),
		nullableDate(series.Premiered),
		nullableString(series.Summary),
		nullableString(series.WebChannel),
		series.Runtime,
		nullableString(series.ShowType),
		nullableString(series.Network),
		nullableTime(series.LastRefreshed),
	}
}
