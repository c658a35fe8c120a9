package catalog

import "time"

// Series is one cached TVMaze show together with the provider attributes the
// lookup surface exposes. Numeric external identifiers use zero to mean
// "absent" and are stored as NULL so partial provider payloads round-trip.
type Series struct {
	TVMazeID      int64
	Name          string
	Status        string
	Rating        float64
	Weight        int64
	Updated       *time.Time
	Language      string
	ScheduleJSON  string
	URL           string
	OriginalImage string
	MediumImage   string
	TVDBID        int64
	TVRageID      int64
	Premiered     *time.Time
	Summary       string
	WebChannel    string
	Runtime       int64
	ShowType      string
	Network       string
	LastRefreshed *time.Time

	// Genres and Episodes are loaded on demand by the read paths that need
	// them; a bare row scan leaves both nil.
	Genres   []string
	Episodes []*Episode
}

// Stale reports whether the record needs a provider refresh. A record with no
// refresh timestamp is always stale.
func (s *Series) Stale(now time.Time, maxAge time.Duration) bool {
	if s.LastRefreshed == nil {
		return true
	}
	return now.Sub(*s.LastRefreshed) > maxAge
}

// Episode is one cached episode row. AirDate is nil when the provider sent no
// airdate or one that failed to parse.
type Episode struct {
	TVMazeID      int64
	SeriesID      int64
	Title         string
	AirDate       *time.Time
	AirStamp      *time.Time
	URL           string
	Number        int
	Season        int
	OriginalImage string
	MediumImage   string
	Runtime       int64
	LastRefreshed *time.Time
}

// Alias maps a folded search name to the series it resolved to.
type Alias struct {
	ID         int64
	SearchName string
	SeriesID   int64
}

// AliasEntry is an alias joined with the name of its series, for listings.
type AliasEntry struct {
	SearchName string
	SeriesID   int64
	SeriesName string
}

// SeriesFilter selects cached series rows by any of the supported identifiers.
// Zero-valued fields are ignored; populated fields are combined with OR so the
// first row matching any identifier wins.
type SeriesFilter struct {
	TVMazeID int64
	TVDBID   int64
	TVRageID int64
	Name     string
}

func (f SeriesFilter) empty() bool {
	return f.TVMazeID == 0 && f.TVDBID == 0 && f.TVRageID == 0 && f.Name == ""
}

// Stats summarizes cache contents for status surfaces.
type Stats struct {
	Series        int
	Episodes      int
	Genres        int
	Aliases       int
	StaleSeries   int
	DatabasePath  string
	DatabaseBytes int64
}
