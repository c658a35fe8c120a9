package resolve

import "testing"

func TestSplitTitleYear(t *testing.T) {
	cases := []struct {
		input    string
		wantName string
		wantYear int
	}{
		{"Firefly (2002)", "Firefly", 2002},
		{"Firefly 2002", "Firefly", 2002},
		{"  spaced   name (2010) ", "spaced name", 2010},
		{"Stargate SG-1", "Stargate SG-1", 0},
		{"The 4400", "The 4400", 0},
		{"Show (1700)", "Show (1700)", 0},
		{"1923", "1923", 0},
		{"", "", 0},
	}
	for _, tc := range cases {
		name, year := splitTitleYear(tc.input)
		if name != tc.wantName || year != tc.wantYear {
			t.Fatalf("splitTitleYear(%q) = (%q, %d), want (%q, %d)", tc.input, name, year, tc.wantName, tc.wantYear)
		}
	}
}

func TestSeriesQueryNameDerivations(t *testing.T) {
	query := SeriesQuery{Title: "Doctor Who (2005)"}
	if got := query.cacheName(); got != "Doctor Who (2005)" {
		t.Fatalf("cache name must stay unsplit, got %q", got)
	}
	remote := query.remoteQuery()
	if remote.Name != "Doctor Who" || remote.Year != 2005 {
		t.Fatalf("remote query = %q / %d, want split title", remote.Name, remote.Year)
	}

	// An explicit year wins over the one parsed from the title.
	query.Year = 1963
	if remote := query.remoteQuery(); remote.Year != 1963 {
		t.Fatalf("explicit year must win, got %d", remote.Year)
	}

	// Name takes precedence over Title for the remote lookup.
	query = SeriesQuery{Title: "raw filename title", Name: "Doctor Who"}
	if remote := query.remoteQuery(); remote.Name != "Doctor Who" {
		t.Fatalf("remote name = %q, want parsed series name", remote.Name)
	}
	if got := query.cacheName(); got != "raw filename title" {
		t.Fatalf("cache name = %q, want title", got)
	}
}

func TestSeriesQueryExternalIDFallbacks(t *testing.T) {
	query := SeriesQuery{TraktTVDBID: 81189, TraktTVRageID: 18164}
	if got := query.effectiveTVDBID(); got != 81189 {
		t.Fatalf("tvdb fallback = %d, want trakt value", got)
	}
	query.TVDBID = 70327
	if got := query.effectiveTVDBID(); got != 70327 {
		t.Fatalf("primary tvdb id must win, got %d", got)
	}
	if got := query.effectiveTVRageID(); got != 18164 {
		t.Fatalf("tvrage fallback = %d, want trakt value", got)
	}
}
