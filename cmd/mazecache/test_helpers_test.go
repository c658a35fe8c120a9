package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

const girlsPayload = `{
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
    {"id": 4952, "url": "https://www.tvmaze.com/episodes/4952/pilot", "name": "Pilot", "season": 1, "number": 1, "airdate": "2012-04-15", "airstamp": "2012-04-16T02:00:00+00:00", "runtime": 30},
    {"id": 4953, "url": "https://www.tvmaze.com/episodes/4953/vagina-panic", "name": "Vagina Panic", "season": 1, "number": 2, "airdate": "2012-04-22", "airstamp": "2012-04-23T02:00:00+00:00", "runtime": 30}
  ]}
}`

type cliTestEnv struct {
	configPath string
	dataDir    string
	server     *httptest.Server
	hits       atomic.Int64
}

// setupCLITestEnv writes a config pointing at a stub TVMaze server that knows
// exactly one show. Lookups mentioning "girls" hit, everything else misses.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	env := &cliTestEnv{}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/shows/139":
			fmt.Fprint(w, girlsPayload)
		case r.URL.Path == "/lookup/shows":
			fmt.Fprint(w, girlsPayload)
		case r.URL.Path == "/singlesearch/shows":
			if strings.Contains(strings.ToLower(r.URL.Query().Get("q")), "girls") {
				fmt.Fprint(w, girlsPayload)
				return
			}
			http.NotFound(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(env.server.Close)

	base := t.TempDir()
	env.dataDir = filepath.Join(base, "data")
	env.configPath = filepath.Join(base, "config.toml")
	writeTestConfig(t, env.configPath, env.dataDir, filepath.Join(base, "logs"), env.server.URL, "127.0.0.1:0")

	// The environment override outranks the config file, so pin it to the
	// stub in case the host environment points elsewhere.
	t.Setenv("TVMAZE_BASE_URL", env.server.URL)

	return env
}

func writeTestConfig(t *testing.T, path, dataDir, logDir, baseURL, apiBind string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\napi_bind = %q\n\n[tvmaze]\nbase_url = %q\n",
		dataDir, logDir, apiBind, baseURL,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("output %q should contain %q", output, substr)
	}
}
