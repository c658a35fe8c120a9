package resolve

import (
	"regexp"
	"strconv"
	"strings"
)

// yearSuffixPattern matches a four-digit run at the end of a search title,
// with or without parentheses. The word boundary keeps it from biting into
// longer digit runs.
var yearSuffixPattern = regexp.MustCompile(`\(?\b(\d{4})\)?$`)

const (
	earliestSeriesYear = 1880
	latestSeriesYear   = 2100
)

// splitTitleYear strips a trailing year marker ("Show (2005)" or "Show 2005")
// from a search title and returns it separately. Implausible years and titles
// that are nothing but a year stay untouched.
func splitTitleYear(value string) (string, int) {
	trimmed := strings.TrimSpace(value)
	loc := yearSuffixPattern.FindStringSubmatchIndex(trimmed)
	if loc == nil {
		return trimmed, 0
	}
	year, _ := strconv.Atoi(trimmed[loc[2]:loc[3]])
	if year < earliestSeriesYear || year > latestSeriesYear {
		return trimmed, 0
	}
	name := strings.Join(strings.Fields(trimmed[:loc[0]]), " ")
	if name == "" {
		return trimmed, 0
	}
	return name, year
}
