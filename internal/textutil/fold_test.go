package textutil

import "testing"

func TestFoldName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase passthrough", "firefly", "firefly"},
		{"mixed case", "The Walking Dead", "the walking dead"},
		{"interior whitespace", "The   Walking\tDead", "the walking dead"},
		{"surrounding whitespace", "  Breaking Bad  ", "breaking bad"},
		{"empty", "", ""},
		{"unicode", "Århus Stories", "århus stories"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FoldName(tt.input); got != tt.want {
				t.Errorf("FoldName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFoldNameEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"The Show", "the show"},
		{"THE  SHOW", "The Show"},
		{"Straße", "STRASSE"},
	}
	for _, pair := range pairs {
		if FoldName(pair[0]) != FoldName(pair[1]) {
			t.Errorf("expected %q and %q to fold to the same key", pair[0], pair[1])
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  a \t b\n c  "); got != "a b c" {
		t.Errorf("CollapseWhitespace() = %q, want %q", got, "a b c")
	}
	if got := CollapseWhitespace("   "); got != "" {
		t.Errorf("CollapseWhitespace(blank) = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short stays", "abc", 10, "abc"},
		{"exact stays", "abcde", 5, "abcde"},
		{"long cut", "abcdefgh", 5, "abcd…"},
		{"tiny max ignored", "abcdefgh", 1, "abcdefgh"},
		{"runes not bytes", "ααααααα", 5, "αααα…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}
