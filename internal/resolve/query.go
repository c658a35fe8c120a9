package resolve

import (
	"strings"

	"mazecache/internal/catalog"
	"mazecache/internal/resolve/tvmaze"
)

// SeriesQuery carries every identifying parameter a series lookup may supply.
// Title is the raw search text exactly as the caller saw it; Name is a series
// name the caller already trusts. The Trakt fields back-fill their primary
// counterparts when those are absent.
type SeriesQuery struct {
	Title         string
	Name          string
	TVMazeID      int64
	TVDBID        int64
	TVRageID      int64
	TraktTVDBID   int64
	TraktTVRageID int64
	Year          int
	TraktYear     int
	IMDBYear      int
	Network       string
	Country       string
	Language      string
}

// EpisodeQuery identifies one episode by scanned season and episode numbers.
type EpisodeQuery struct {
	SeriesQuery
	Season  int
	Episode int
}

func (q SeriesQuery) effectiveTVDBID() int64 {
	if q.TVDBID != 0 {
		return q.TVDBID
	}
	return q.TraktTVDBID
}

func (q SeriesQuery) effectiveTVRageID() int64 {
	if q.TVRageID != 0 {
		return q.TVRageID
	}
	return q.TraktTVRageID
}

// cacheName is the name a direct cache probe matches on: the raw title as
// given, falling back to the explicit series name. It is deliberately not
// split; "The Show (2020)" only matches a cached series of that exact name,
// and otherwise falls through to the alias table.
func (q SeriesQuery) cacheName() string {
	if strings.TrimSpace(q.Title) != "" {
		return q.Title
	}
	return q.Name
}

// lookupTitle is the text used for alias matching, alias recording, and the
// provider name search: the trusted series name first, then the raw title.
func (q SeriesQuery) lookupTitle() string {
	if strings.TrimSpace(q.Name) != "" {
		return q.Name
	}
	return q.Title
}

func (q SeriesQuery) cacheFilter() catalog.SeriesFilter {
	return catalog.SeriesFilter{
		TVMazeID: q.TVMazeID,
		TVDBID:   q.effectiveTVDBID(),
		TVRageID: q.effectiveTVRageID(),
		Name:     strings.TrimSpace(q.cacheName()),
	}
}

// remoteQuery translates the lookup into provider terms. All identifiers are
// passed through; the provider client applies its own precedence. The name is
// split from any trailing year marker, and the parsed year is the weakest
// year source.
func (q SeriesQuery) remoteQuery() tvmaze.ShowQuery {
	title, parsedYear := splitTitleYear(q.lookupTitle())

	year := q.Year
	if year == 0 {
		year = q.TraktYear
	}
	if year == 0 {
		year = q.IMDBYear
	}
	if year == 0 {
		year = parsedYear
	}

	return tvmaze.ShowQuery{
		TVMazeID: q.TVMazeID,
		TVDBID:   q.effectiveTVDBID(),
		TVRageID: q.effectiveTVRageID(),
		Name:     title,
		Year:     year,
		Network:  q.Network,
		Country:  q.Country,
		Language: q.Language,
	}
}
