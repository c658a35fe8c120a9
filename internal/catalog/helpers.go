package catalog

import (
	"database/sql"
	"errors"
	"time"
)

const seriesColumns = "tvmaze_id, name, status, rating, weight, updated, language, schedule_json, url, original_image, medium_image, tvdb_id, tvrage_id, premiered, summary, webchannel, runtime, show_type, network, last_refreshed"

const episodeColumns = "tvmaze_id, series_id, title, airdate, airstamp, url, number, season_number, original_image, medium_image, runtime, last_refreshed"

const airdateLayout = "2006-01-02"

func scanSeries(scanner interface{ Scan(dest ...any) error }) (*Series, error) {
	var (
		id            int64
		name          sql.NullString
		status        sql.NullString
		rating        sql.NullFloat64
		weight        sql.NullInt64
		updatedRaw    sql.NullString
		language      sql.NullString
		schedule      sql.NullString
		url           sql.NullString
		originalImage sql.NullString
		mediumImage   sql.NullString
		tvdbID        sql.NullInt64
		tvrageID      sql.NullInt64
		premieredRaw  sql.NullString
		summary       sql.NullString
		webChannel    sql.NullString
		runtime       sql.NullInt64
		showType      sql.NullString
		network       sql.NullString
		refreshedRaw  sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&name,
		&status,
		&rating,
		&weight,
		&updatedRaw,
		&language,
		&schedule,
		&url,
		&originalImage,
		&mediumImage,
		&tvdbID,
		&tvrageID,
		&premieredRaw,
		&summary,
		&webChannel,
		&runtime,
		&showType,
		&network,
		&refreshedRaw,
	); err != nil {
		return nil, err
	}

	series := &Series{
		TVMazeID:      id,
		Name:          name.String,
		Status:        status.String,
		Rating:        rating.Float64,
		Weight:        weight.Int64,
		Language:      language.String,
		ScheduleJSON:  schedule.String,
		URL:           url.String,
		OriginalImage: originalImage.String,
		MediumImage:   mediumImage.String,
		TVDBID:        tvdbID.Int64,
		TVRageID:      tvrageID.Int64,
		Summary:       summary.String,
		WebChannel:    webChannel.String,
		Runtime:       runtime.Int64,
		ShowType:      showType.String,
		Network:       network.String,
	}

	if updatedRaw.Valid {
		if updated, err := parseTimeString(updatedRaw.String); err == nil {
			series.Updated = &updated
		}
	}
	if premieredRaw.Valid {
		if premiered, err := parseDateString(premieredRaw.String); err == nil {
			series.Premiered = &premiered
		}
	}
	if refreshedRaw.Valid {
		if refreshed, err := parseTimeString(refreshedRaw.String); err == nil {
			series.LastRefreshed = &refreshed
		}
	}
	return series, nil
}

func scanEpisode(scanner interface{ Scan(dest ...any) error }) (*Episode, error) {
	var (
		id            int64
		seriesID      int64
		title         sql.NullString
		airdateRaw    sql.NullString
		airstampRaw   sql.NullString
		url           sql.NullString
		number        sql.NullInt64
		season        sql.NullInt64
		originalImage sql.NullString
		mediumImage   sql.NullString
		runtime       sql.NullInt64
		refreshedRaw  sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&seriesID,
		&title,
		&airdateRaw,
		&airstampRaw,
		&url,
		&number,
		&season,
		&originalImage,
		&mediumImage,
		&runtime,
		&refreshedRaw,
	); err != nil {
		return nil, err
	}

	episode := &Episode{
		TVMazeID:      id,
		SeriesID:      seriesID,
		Title:         title.String,
		URL:           url.String,
		Number:        int(number.Int64),
		Season:        int(season.Int64),
		OriginalImage: originalImage.String,
		MediumImage:   mediumImage.String,
		Runtime:       runtime.Int64,
	}

	if airdateRaw.Valid {
		if airdate, err := parseDateString(airdateRaw.String); err == nil {
			episode.AirDate = &airdate
		}
	}
	if airstampRaw.Valid {
		if airstamp, err := parseTimeString(airstampRaw.String); err == nil {
			episode.AirStamp = &airstamp
		}
	}
	if refreshedRaw.Valid {
		if refreshed, err := parseTimeString(refreshedRaw.String); err == nil {
			episode.LastRefreshed = &refreshed
		}
	}
	return episode, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt64(value int64) any {
	if value == 0 {
		return nil
	}
	return value
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func nullableDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.Format(airdateLayout)
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func parseDateString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	return time.Parse(airdateLayout, value)
}
