// Package api holds the wire types served by the daemon's HTTP endpoints
// and the converters that build them from catalog rows.
//
// SeriesRecord and EpisodeRecord are the two payload shapes; FromSeries,
// FromEpisode, FromEpisodes, FromAliases, and FromStats are the only
// constructors. Handlers and the CLI never assemble records by hand, which
// keeps the JSON surface stable while catalog internals move.
//
// Records use camelCase JSON tags and omit absent optional values instead
// of writing null, so an unannounced episode simply has no airdate key.
// Timestamps are RFC3339 with milliseconds; airdates and premiere dates
// stay bare 2006-01-02 strings exactly as the provider sends them. The
// show schedule passes through as json.RawMessage so it round-trips
// without re-encoding.
package api
