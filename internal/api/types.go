package api

import "encoding/json"

// dateTimeFormat renders payload timestamps as RFC3339 with milliseconds.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// dateFormat is used for airdates and premiere dates, which carry no time.
const dateFormat = "2006-01-02"

// SeriesRecord describes a cached series in a transport-friendly format.
type SeriesRecord struct {
	TVMazeID      int64           `json:"tvmazeId"`
	Name          string          `json:"name"`
	Status        string          `json:"status,omitempty"`
	Rating        float64         `json:"rating,omitempty"`
	Weight        int64           `json:"weight,omitempty"`
	Language      string          `json:"language,omitempty"`
	ShowType      string          `json:"type,omitempty"`
	Network       string          `json:"network,omitempty"`
	WebChannel    string          `json:"webChannel,omitempty"`
	Runtime       int64           `json:"runtime,omitempty"`
	Premiered     string          `json:"premiered,omitempty"`
	Updated       string          `json:"updated,omitempty"`
	URL           string          `json:"url,omitempty"`
	OriginalImage string          `json:"originalImage,omitempty"`
	MediumImage   string          `json:"mediumImage,omitempty"`
	TVDBID        int64           `json:"tvdbId,omitempty"`
	TVRageID      int64           `json:"tvrageId,omitempty"`
	Summary       string          `json:"summary,omitempty"`
	Schedule      json.RawMessage `json:"schedule,omitempty"`
	Genres        []string        `json:"genres,omitempty"`
	LastRefreshed string          `json:"lastRefreshed,omitempty"`
	Episodes      []EpisodeRecord `json:"episodes,omitempty"`
}

// EpisodeRecord describes a cached episode.
type EpisodeRecord struct {
	TVMazeID      int64  `json:"tvmazeId"`
	SeriesID      int64  `json:"seriesId"`
	Title         string `json:"title,omitempty"`
	Season        int    `json:"season"`
	Number        int    `json:"number"`
	AirDate       string `json:"airdate,omitempty"`
	AirStamp      string `json:"airstamp,omitempty"`
	Runtime       int64  `json:"runtime,omitempty"`
	URL           string `json:"url,omitempty"`
	OriginalImage string `json:"originalImage,omitempty"`
	MediumImage   string `json:"mediumImage,omitempty"`
	LastRefreshed string `json:"lastRefreshed,omitempty"`
}

// AliasRecord describes one recorded search alias.
type AliasRecord struct {
	SearchName string `json:"searchName"`
	SeriesID   int64  `json:"seriesId"`
	SeriesName string `json:"seriesName,omitempty"`
}

// CacheStats summarizes cache contents for status reporting.
type CacheStats struct {
	Series        int    `json:"series"`
	Episodes      int    `json:"episodes"`
	Genres        int    `json:"genres"`
	Aliases       int    `json:"aliases"`
	StaleSeries   int    `json:"staleSeries"`
	DatabasePath  string `json:"databasePath"`
	DatabaseBytes int64  `json:"databaseBytes"`
}

// StatusResponse aggregates daemon runtime information for API consumers.
type StatusResponse struct {
	Running      bool       `json:"running"`
	PID          int        `json:"pid"`
	RunID        string     `json:"runId,omitempty"`
	StartedAt    string     `json:"startedAt,omitempty"`
	LockFilePath string     `json:"lockFilePath,omitempty"`
	Cache        CacheStats `json:"cache"`
}

// SeriesResponse wraps a single resolved series.
type SeriesResponse struct {
	Series SeriesRecord `json:"series"`
}

// EpisodeResponse wraps a single resolved episode.
type EpisodeResponse struct {
	Episode EpisodeRecord `json:"episode"`
}

// AliasListResponse wraps the recorded alias mappings.
type AliasListResponse struct {
	Aliases []AliasRecord `json:"aliases"`
}
