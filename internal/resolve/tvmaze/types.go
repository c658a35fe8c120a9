package tvmaze

import "encoding/json"

// Rating carries the provider's aggregate score. Average is null for shows
// nobody has rated yet.
type Rating struct {
	Average *float64 `json:"average"`
}

// Country identifies where a network broadcasts.
type Country struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Timezone string `json:"timezone"`
}

// Network is a broadcast network or streaming channel.
type Network struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Country *Country `json:"country"`
}

// Externals holds cross-provider identifiers. TVMaze returns null for
// identifiers it has no mapping for.
type Externals struct {
	TheTVDB *int64  `json:"thetvdb"`
	TVRage  *int64  `json:"tvrage"`
	IMDB    *string `json:"imdb"`
}

// Image carries the provider's artwork URLs.
type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// Show is the provider's show payload. Schedule is kept opaque; the cache
// stores it verbatim.
type Show struct {
	ID         int64           `json:"id"`
	URL        string          `json:"url"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Language   string          `json:"language"`
	Genres     []string        `json:"genres"`
	Status     string          `json:"status"`
	Runtime    int64           `json:"runtime"`
	Premiered  string          `json:"premiered"`
	Schedule   json.RawMessage `json:"schedule"`
	Rating     Rating          `json:"rating"`
	Weight     int64           `json:"weight"`
	Network    *Network        `json:"network"`
	WebChannel *Network        `json:"webChannel"`
	Externals  Externals       `json:"externals"`
	Image      *Image          `json:"image"`
	Summary    string          `json:"summary"`
	Updated    int64           `json:"updated"`
	Embedded   *ShowEmbedding  `json:"_embedded"`
}

// ShowEmbedding holds the optional embedded resources requested with
// ?embed=episodes.
type ShowEmbedding struct {
	Episodes []Episode `json:"episodes"`
}

// Episode is the provider's episode payload. AirDate is the provider's
// YYYY-MM-DD string, empty when unannounced; AirStamp is the full timestamp.
type Episode struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Name     string `json:"name"`
	Season   int    `json:"season"`
	Number   int    `json:"number"`
	AirDate  string `json:"airdate"`
	AirStamp string `json:"airstamp"`
	Runtime  int64  `json:"runtime"`
	Image    *Image `json:"image"`
	Summary  string `json:"summary"`
}

// SearchResult is one scored candidate from the search endpoint.
type SearchResult struct {
	Score float64 `json:"score"`
	Show  Show    `json:"show"`
}
