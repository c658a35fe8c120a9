package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// EpisodeByID returns the cached episode with the given TVMaze ID, or nil
// when it is not cached.
func (t *Tx) EpisodeByID(ctx context.Context, tvmazeID int64) (*Episode, error) {
	ctx = ensureContext(ctx)
	query := fmt.Sprintf("SELECT %s FROM episodes WHERE tvmaze_id = ?", episodeColumns)
	episode, err := scanEpisode(t.tx.QueryRowContext(ctx, query, tvmazeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load episode %d: %w", tvmazeID, err)
	}
	return episode, nil
}

// EpisodesBySeries returns every cached episode of a series ordered by season
// and episode number.
func (t *Tx) EpisodesBySeries(ctx context.Context, seriesID int64) ([]*Episode, error) {
	return episodesBySeries(ensureContext(ctx), t.tx, seriesID)
}

func episodesBySeries(ctx context.Context, q querier, seriesID int64) ([]*Episode, error) {
	query := fmt.Sprintf("SELECT %s FROM episodes WHERE series_id = ? ORDER BY season_number, number", episodeColumns)
	rows, err := q.QueryContext(ctx, query, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list episodes for series %d: %w", seriesID, err)
	}
	defer rows.Close()

	var episodes []*Episode
	for rows.Next() {
		episode, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		episodes = append(episodes, episode)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate episodes: %w", err)
	}
	return episodes, nil
}

// CreateEpisode inserts a new episode row.
func (t *Tx) CreateEpisode(ctx context.Context, episode *Episode) error {
	ctx = ensureContext(ctx)
	_, err := t.tx.ExecContext(ctx, `
        INSERT INTO episodes (`+episodeColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		episodeArgs(episode)...,
	)
	if err != nil {
		return fmt.Errorf("create episode %d: %w", episode.TVMazeID, err)
	}
	return nil
}

// UpdateEpisode overwrites every mutable column of an existing episode row.
func (t *Tx) UpdateEpisode(ctx context.Context, episode *Episode) error {
	ctx = ensureContext(ctx)
	_, err := t.tx.ExecContext(ctx, `
        UPDATE episodes
        SET series_id = ?, title = ?, airdate = ?, airstamp = ?, url = ?,
            number = ?, season_number = ?, original_image = ?, medium_image = ?,
            runtime = ?, last_refreshed = ?
        WHERE tvmaze_id = ?`,
		append(episodeArgs(episode)[1:], episode.TVMazeID)...,
	)
	if err != nil {
		return fmt.Errorf("update episode %d: %w", episode.TVMazeID, err)
	}
	return nil
}

func episodeArgs(episode *Episode) []any {
	return []any{
		episode.TVMazeID,
		episode.SeriesID,
		nullableString(episode.Title),
		nullableDate(episode.AirDate),
		nullableTime(episode.AirStamp),
		nullableString(episode.URL),
		episode.Number,
		episode.Season,
		nullableString(episode.OriginalImage),
		nullableString(episode.MediumImage),
		episode.Runtime,
		nullableTime(episode.LastRefreshed),
	}
}
