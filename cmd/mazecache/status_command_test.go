package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mazecache/internal/api"
)

func TestStatusReportsCacheCounts(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env.configPath, "lookup", "Girls"); err != nil {
		t.Fatalf("seed lookup: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Cache database:")
	requireContains(t, out, "Series:")
	requireContains(t, out, "Episodes:")
}

func TestStatusJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env.configPath, "lookup", "Girls"); err != nil {
		t.Fatalf("seed lookup: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "status", "--json")
	if err != nil {
		t.Fatalf("status --json: %v", err)
	}

	var stats api.CacheStats
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if stats.Series != 1 {
		t.Fatalf("expected 1 cached series, got %d", stats.Series)
	}
	if stats.Episodes != 2 {
		t.Fatalf("expected 2 cached episodes, got %d", stats.Episodes)
	}
	if stats.DatabasePath == "" || stats.DatabaseBytes == 0 {
		t.Fatalf("expected database metadata, got %+v", stats)
	}
}

func TestStatusRemoteQueriesDaemonAPI(t *testing.T) {
	payload := api.StatusResponse{
		Running:   true,
		PID:       4242,
		RunID:     "run-1",
		StartedAt: "2026-08-25T10:00:00.000Z",
		Cache:     api.CacheStats{Series: 3, Episodes: 40},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode status: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	bind := strings.TrimPrefix(server.URL, "http://")
	writeTestConfig(t, configPath, filepath.Join(base, "data"), filepath.Join(base, "logs"), "http://127.0.0.1:9", bind)

	out, _, err := runCLI(t, configPath, "status", "--remote")
	if err != nil {
		t.Fatalf("status --remote: %v", err)
	}
	requireContains(t, out, "Daemon running (pid 4242)")
	requireContains(t, out, "Series:")
	requireContains(t, out, "3")
}

func TestStatusRemoteDisabledWithoutBind(t *testing.T) {
	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\napi_bind = \"\"\n",
		filepath.Join(base, "data"), filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	_, _, err := runCLI(t, configPath, "status", "--remote")
	if err == nil {
		t.Fatal("expected an error when the API is disabled")
	}
	requireContains(t, err.Error(), "api_bind")
}
