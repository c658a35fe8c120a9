package tvmaze_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mazecache/internal/resolve/tvmaze"
)

const showPayload = `{
  "id": 139,
  "url": "https://www.tvmaze.com/shows/139/girls",
  "name": "Girls",
  "type": "Scripted",
  "language": "English",
  "genres": ["Drama", "Romance"],
  "status": "Ended",
  "runtime": 30,
  "premiered": "2012-04-15",
  "schedule": {"time": "22:00", "days": ["Sunday"]},
  "rating": {"average": 6.8},
  "weight": 97,
  "network": {"id": 8, "name": "HBO", "country": {"name": "United States", "code": "US", "timezone": "America/New_York"}},
  "webChannel": null,
  "externals": {"tvrage": 30124, "thetvdb": 220411, "imdb": "tt1723816"},
  "image": {"medium": "https://example.com/m.jpg", "original": "https://example.com/o.jpg"},
  "summary": "<p>HBO comedy.</p>",
  "updated": 1611310521,
  "_embedded": {"episodes": [
    {"id": 4952, "url": "https://www.tvmaze.com/episodes/4952/pilot", "name": "Pilot", "season": 1, "number": 1, "airdate": "2012-04-15", "airstamp": "2012-04-16T02:00:00+00:00", "runtime": 30}
  ]}
}`

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := tvmaze.New("  "); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestShowByIDEmbedsEpisodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shows/139" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("embed") != "episodes" {
			t.Fatalf("expected embed query parameter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(showPayload))
	}))
	t.Cleanup(server.Close)

	client, err := tvmaze.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	show, err := client.ShowByID(context.Background(), 139)
	if err != nil {
		t.Fatalf("ShowByID returned error: %v", err)
	}
	if show.Name != "Girls" || show.ID != 139 {
		t.Fatalf("unexpected show: %#v", show)
	}
	if show.Rating.Average == nil || *show.Rating.Average != 6.8 {
		t.Fatalf("unexpected rating: %#v", show.Rating)
	}
	if show.Externals.TheTVDB == nil || *show.Externals.TheTVDB != 220411 {
		t.Fatalf("unexpected externals: %#v", show.Externals)
	}
	if show.WebChannel != nil {
		t.Fatalf("expected nil web channel, got %#v", show.WebChannel)
	}
	if show.Embedded == nil || len(show.Embedded.Episodes) != 1 || show.Embedded.Episodes[0].Name != "Pilot" {
		t.Fatalf("unexpected embedded episodes: %#v", show.Embedded)
	}
}

func TestGetShowResolvesTVDBIDThroughLookup(t *testing.T) {
	var lookupHits, showHits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/lookup/shows":
			lookupHits++
			if r.URL.Query().Get("thetvdb") != "220411" {
				t.Fatalf("expected thetvdb query parameter, got %q", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`{"id": 139, "name": "Girls"}`))
		case "/shows/139":
			showHits++
			_, _ = w.Write([]byte(showPayload))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)

	client, err := tvmaze.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	show, err := client.GetShow(context.Background(), tvmaze.ShowQuery{TVDBID: 220411})
	if err != nil {
		t.Fatalf("GetShow returned error: %v", err)
	}
	if show.ID != 139 {
		t.Fatalf("unexpected show id %d", show.ID)
	}
	if lookupHits != 1 || showHits != 1 {
		t.Fatalf("expected one lookup and one show fetch, got %d and %d", lookupHits, showHits)
	}
}

func TestGetShowFiltersSearchCandidatesByYear(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search/shows":
			_, _ = w.Write([]byte(`[
              {"score": 2.0, "show": {"id": 100, "name": "Doctor Who", "premiered": "1963-11-23"}},
              {"score": 1.5, "show": {"id": 210, "name": "Doctor Who", "premiered": "2005-03-26"}}
            ]`))
		case "/shows/210":
			_, _ = w.Write([]byte(`{"id": 210, "name": "Doctor Who", "premiered": "2005-03-26", "_embedded": {"episodes": []}}`))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)

	client, err := tvmaze.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	show, err := client.GetShow(context.Background(), tvmaze.ShowQuery{Name: "Doctor Who", Year: 2005})
	if err != nil {
		t.Fatalf("GetShow returned error: %v", err)
	}
	if show.ID != 210 {
		t.Fatalf("expected 2005 revival, got show %d", show.ID)
	}
}

func TestGetShowFiltersSearchCandidatesByNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search/shows":
			_, _ = w.Write([]byte(`[
              {"score": 2.0, "show": {"id": 301, "name": "The Office", "network": {"id": 12, "name": "BBC Two", "country": {"name": "United Kingdom", "code": "GB"}}}},
              {"score": 1.9, "show": {"id": 302, "name": "The Office", "network": {"id": 1, "name": "NBC", "country": {"name": "United States", "code": "US"}}}}
            ]`))
		case "/shows/302":
			_, _ = w.Write([]byte(`{"id": 302, "name": "The Office", "_embedded": {"episodes": []}}`))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)

	client, err := tvmaze.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	show, err := client.GetShow(context.Background(), tvmaze.ShowQuery{Name: "The Office", Network: "nbc"})
	if err != nil {
		t.Fatalf("GetShow returned error: %v", err)
	}
	if show.ID != 302 {
		t.Fatalf("expected NBC candidate, got show %d", show.ID)
	}
}

func TestGetShowSearchMissReturnsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client, err := tvmaze.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.GetShow(context.Background(), tvmaze.ShowQuery{Name: "No Such Show", Year: 1999})
	if !errors.Is(err, tvmaze.ErrShowNotFound) {
		t.Fatalf("expected ErrShowNotFound, got %v", err)
	}
}

func TestSingleSearchMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"name": "Not Found", "status": 404}`))
	}))
	t.Cleanup(server.Close)

	client, err := tvmaze.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := client.SingleSearch(context.Background(), "ghost show"); !errors.Is(err, tvmaze.ErrShowNotFound) {
		t.Fatalf("expected ErrShowNotFound, got %v", err)
	}
}

func TestGetShowFallsBackToEpisodeEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/shows/99":
			_, _ = w.Write([]byte(`{"id": 99, "name": "Bare Show"}`))
		case "/shows/99/episodes":
			_, _ = w.Write([]byte(`[{"id": 9901, "name": "Pilot", "season": 1, "number": 1}]`))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)

	client, err := tvmaze.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	show, err := client.GetShow(context.Background(), tvmaze.ShowQuery{TVMazeID: 99})
	if err != nil {
		t.Fatalf("GetShow returned error: %v", err)
	}
	if show.Embedded == nil || len(show.Embedded.Episodes) != 1 {
		t.Fatalf("expected episode fallback to populate embed, got %#v", show.Embedded)
	}
}

func TestEpisodesRequestsSpecials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shows/139/episodes" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("specials") != "1" {
			t.Fatalf("expected specials query parameter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
          {"id": 4952, "name": "Pilot", "season": 1, "number": 1, "airdate": "2012-04-15"},
          {"id": 4953, "name": "Vagina Panic", "season": 1, "number": 2, "airdate": "2012-04-22"}
        ]`))
	}))
	t.Cleanup(server.Close)

	client, err := tvmaze.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	episodes, err := client.Episodes(context.Background(), 139)
	if err != nil {
		t.Fatalf("Episodes returned error: %v", err)
	}
	if len(episodes) != 2 || episodes[1].Number != 2 {
		t.Fatalf("unexpected episodes: %#v", episodes)
	}
}

func TestGetShowHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client, err := tvmaze.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.GetShow(context.Background(), tvmaze.ShowQuery{TVMazeID: 139})
	if err == nil {
		t.Fatal("expected error when provider returns non-200")
	}
	if errors.Is(err, tvmaze.ErrShowNotFound) {
		t.Fatalf("rate limit must not read as a miss: %v", err)
	}
	if want := fmt.Sprintf("status %d", http.StatusTooManyRequests); !strings.Contains(err.Error(), want) {
		t.Fatalf("expected status code in error, got %v", err)
	}
}
