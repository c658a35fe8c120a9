package main

import (
	"encoding/json"
	"testing"

	"mazecache/internal/api"
)

func TestAliasesListsRecordedNames(t *testing.T) {
	env := setupCLITestEnv(t)

	// Looking up a variant title records an alias against the canonical name.
	if _, _, err := runCLI(t, env.configPath, "lookup", "Girls (US)"); err != nil {
		t.Fatalf("seed lookup: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "aliases")
	if err != nil {
		t.Fatalf("aliases: %v", err)
	}
	requireContains(t, out, "girls (us)")
	requireContains(t, out, "Girls")
	requireContains(t, out, "139")
}

func TestAliasesForOneSeries(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env.configPath, "lookup", "Girls (US)"); err != nil {
		t.Fatalf("seed lookup: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "aliases", "Girls")
	if err != nil {
		t.Fatalf("aliases Girls: %v", err)
	}
	requireContains(t, out, "girls (us)")

	hitsBefore := env.hits.Load()
	if _, _, err := runCLI(t, env.configPath, "aliases", "Girls"); err != nil {
		t.Fatalf("aliases Girls: %v", err)
	}
	if got := env.hits.Load(); got != hitsBefore {
		t.Fatalf("alias listing contacted the provider: %d requests, want %d", got, hitsBefore)
	}
}

func TestAliasesJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env.configPath, "lookup", "Girls (US)"); err != nil {
		t.Fatalf("seed lookup: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "aliases", "--json")
	if err != nil {
		t.Fatalf("aliases --json: %v", err)
	}

	var payload api.AliasListResponse
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(payload.Aliases) != 1 {
		t.Fatalf("expected 1 alias, got %d", len(payload.Aliases))
	}
	alias := payload.Aliases[0]
	if alias.SearchName != "girls (us)" || alias.SeriesID != 139 || alias.SeriesName != "Girls" {
		t.Fatalf("unexpected alias: %+v", alias)
	}
}

func TestAliasesEmptyCache(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "aliases")
	if err != nil {
		t.Fatalf("aliases: %v", err)
	}
	requireContains(t, out, "No aliases recorded")
}

func TestAliasesUnknownSeries(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "aliases", "No Such Show")
	if err != nil {
		t.Fatalf("aliases: %v", err)
	}
	requireContains(t, out, "No series matched the lookup")
	if got := env.hits.Load(); got != 0 {
		t.Fatalf("alias listing contacted the provider %d times", got)
	}
}
