// Package catalog persists TVMaze series metadata in SQLite and exposes the
// reads and writes the resolution engine runs against it.
//
// The Store manages database connections, schema initialization, and status
// queries. All resolution work happens inside a Tx so a cache probe, a
// provider reconciliation, and any alias writes commit or roll back as one
// unit. Series rows are keyed by TVMaze ID; episode rows reference their
// series and cascade on delete; alias rows map folded search names back to a
// series.
//
// The database is a cache, not an archive: rows are upserted on refresh and
// never pruned, and any copy can be deleted and rebuilt from the provider.
// Schema changes bump the version in schema.go; users delete the database to
// adopt the new schema.
package catalog
