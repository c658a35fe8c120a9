package api

import (
	"encoding/json"
	"strings"
	"time"

	"mazecache/internal/catalog"
)

// FromSeries converts a catalog record to its API representation. Episodes
// are only carried when requested; genre-only views stay small.
func FromSeries(series *catalog.Series, includeEpisodes bool) SeriesRecord {
	if series == nil {
		return SeriesRecord{}
	}

	dto := SeriesRecord{
		TVMazeID:      series.TVMazeID,
		Name:          series.Name,
		Status:        series.Status,
		Rating:        series.Rating,
		Weight:        series.Weight,
		Language:      series.Language,
		ShowType:      series.ShowType,
		Network:       series.Network,
		WebChannel:    series.WebChannel,
		Runtime:       series.Runtime,
		URL:           series.URL,
		OriginalImage: series.OriginalImage,
		MediumImage:   series.MediumImage,
		TVDBID:        series.TVDBID,
		TVRageID:      series.TVRageID,
		Summary:       series.Summary,
		Genres:        series.Genres,
		Premiered:     FormatDate(series.Premiered),
		Updated:       FormatTime(series.Updated),
		LastRefreshed: FormatTime(series.LastRefreshed),
	}
	if raw := strings.TrimSpace(series.ScheduleJSON); raw != "" {
		dto.Schedule = json.RawMessage(raw)
	}
	if includeEpisodes {
		dto.Episodes = FromEpisodes(series.Episodes)
	}
	return dto
}

// FromEpisode converts a catalog episode to its API representation.
func FromEpisode(episode *catalog.Episode) EpisodeRecord {
	if episode == nil {
		return EpisodeRecord{}
	}
	return EpisodeRecord{
		TVMazeID:      episode.TVMazeID,
		SeriesID:      episode.SeriesID,
		Title:         episode.Title,
		Season:        episode.Season,
		Number:        episode.Number,
		AirDate:       FormatDate(episode.AirDate),
		AirStamp:      FormatTime(episode.AirStamp),
		Runtime:       episode.Runtime,
		URL:           episode.URL,
		OriginalImage: episode.OriginalImage,
		MediumImage:   episode.MediumImage,
		LastRefreshed: FormatTime(episode.LastRefreshed),
	}
}

// FromEpisodes converts a slice of catalog episodes into API DTOs.
func FromEpisodes(episodes []*catalog.Episode) []EpisodeRecord {
	if len(episodes) == 0 {
		return nil
	}
	out := make([]EpisodeRecord, 0, len(episodes))
	for _, episode := range episodes {
		out = append(out, FromEpisode(episode))
	}
	return out
}

// FromAliases converts alias listings into API DTOs.
func FromAliases(entries []catalog.AliasEntry) []AliasRecord {
	if len(entries) == 0 {
		return nil
	}
	out := make([]AliasRecord, 0, len(entries))
	for _, entry := range entries {
		out = append(out, AliasRecord{
			SearchName: entry.SearchName,
			SeriesID:   entry.SeriesID,
			SeriesName: entry.SeriesName,
		})
	}
	return out
}

// FromStats converts store statistics to the API payload.
func FromStats(stats catalog.Stats) CacheStats {
	return CacheStats{
		Series:        stats.Series,
		Episodes:      stats.Episodes,
		Genres:        stats.Genres,
		Aliases:       stats.Aliases,
		StaleSeries:   stats.StaleSeries,
		DatabasePath:  stats.DatabasePath,
		DatabaseBytes: stats.DatabaseBytes,
	}
}

// FormatTime converts an optional time to RFC3339 or returns empty string.
func FormatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}

// FormatDate converts an optional time to a bare date or returns empty string.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateFormat)
}
