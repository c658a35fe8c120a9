package testsupport

import (
	"encoding/json"
	"fmt"

	"mazecache/internal/resolve/tvmaze"
)

// StubShow builds a provider show with populated externals, genres, and two
// embedded episodes, for exercising resolution flows without a network.
func StubShow(id int64, name string) *tvmaze.Show {
	rating := 8.2
	tvdbID := id + 1000
	tvrageID := id + 2000
	return &tvmaze.Show{
		ID:        id,
		URL:       fmt.Sprintf("https://www.tvmaze.com/shows/%d", id),
		Name:      name,
		Type:      "Scripted",
		Language:  "English",
		Genres:    []string{"Drama"},
		Status:    "Running",
		Runtime:   60,
		Premiered: "2012-04-15",
		Schedule:  json.RawMessage(`{"time":"22:00","days":["Sunday"]}`),
		Rating:    tvmaze.Rating{Average: &rating},
		Weight:    90,
		Network: &tvmaze.Network{
			ID:      8,
			Name:    "HBO",
			Country: &tvmaze.Country{Name: "United States", Code: "US", Timezone: "America/New_York"},
		},
		Externals: tvmaze.Externals{TheTVDB: &tvdbID, TVRage: &tvrageID},
		Image:     &tvmaze.Image{Medium: "https://example.com/m.jpg", Original: "https://example.com/o.jpg"},
		Summary:   "<p>Stub show.</p>",
		Updated:   1611310521,
		Embedded: &tvmaze.ShowEmbedding{Episodes: []tvmaze.Episode{
			StubEpisode(id*100+1, 1, 1, "2012-04-15"),
			StubEpisode(id*100+2, 1, 2, "2012-04-22"),
		}},
	}
}

// StubEpisode builds one provider episode. An empty airdate produces an
// unannounced episode with no airstamp either.
func StubEpisode(id int64, season, number int, airdate string) tvmaze.Episode {
	episode := tvmaze.Episode{
		ID:      id,
		URL:     fmt.Sprintf("https://www.tvmaze.com/episodes/%d", id),
		Name:    fmt.Sprintf("Episode %dx%02d", season, number),
		Season:  season,
		Number:  number,
		AirDate: airdate,
		Runtime: 60,
	}
	if airdate != "" {
		episode.AirStamp = airdate + "T02:00:00+00:00"
	}
	return episode
}
