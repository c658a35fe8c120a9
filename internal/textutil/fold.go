package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

var nameFolder = cases.Fold()

// FoldName converts a series name into the canonical key used for
// case-insensitive comparison and alias storage. Whitespace is collapsed
// before folding so "The  Show" and "the show" produce the same key.
func FoldName(name string) string {
	return nameFolder.String(CollapseWhitespace(name))
}

// CollapseWhitespace trims the string and squeezes interior whitespace runs
// down to single spaces.
func CollapseWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// Truncate shortens a string to at most max runes, appending an ellipsis when
// anything was cut. A max below 2 returns the string unchanged.
func Truncate(value string, max int) string {
	if max < 2 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max-1]) + "…"
}
