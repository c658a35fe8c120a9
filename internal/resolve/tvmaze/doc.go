// Package tvmaze provides the minimal TVMaze API client used during series
// resolution.
//
// It exposes show fetch by TVMaze ID, lookup by TVDB and TVRage IDs, single
// and scored name search, and episode listing, with episode lists embedded
// where the API supports it. GetShow wraps those endpoints behind one entry
// point that picks the strongest identifier a query carries and applies
// year, network, country, and language qualifiers to name searches. A
// provider 404 surfaces as ErrShowNotFound so callers can treat an unknown
// show differently from a failing one. Options allow tests to supply custom
// HTTP clients without modifying production code.
package tvmaze
