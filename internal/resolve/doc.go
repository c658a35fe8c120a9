// Package resolve implements cache-or-fetch series resolution.
//
// A lookup probes the catalog by any combination of identifiers, falls back
// to the alias table for previously reconciled titles, and only reaches the
// TVMaze provider when the cached record is missing or older than the
// configured refresh window. Provider payloads reconcile by stable show ID:
// an expired record is overwritten in place, its episode index upserted
// without deletions, and its genre links replaced. Searches whose title
// differs from the canonical show name leave an alias behind so repeat
// lookups stay local.
//
// Each ResolveSeries or ResolveEpisode call owns one catalog transaction;
// concurrent refreshes of the same series are last-writer-wins. An unknown
// show is not an error: both resolvers return (nil, nil) for a clean miss.
package resolve
