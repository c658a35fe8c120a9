// Package textutil normalizes and trims the strings the cache compares and
// prints. FoldName builds the canonical key used to match series names
// across accents and casing, CollapseWhitespace cleans up user-supplied
// titles, and Truncate shortens table cells without splitting runes.
package textutil
