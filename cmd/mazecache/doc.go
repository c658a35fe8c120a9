// Package main implements the mazecache CLI.
//
// Commands resolve series and episodes, inspect recorded aliases, report
// cache health, and scaffold configuration. Each invocation opens the
// SQLite cache directly; WAL mode lets it coexist with a running daemon,
// so nothing here talks to mazecached over the network.
//
// Logic belongs in the internal packages. Commands parse flags, call into
// them, and render the result as a table or JSON.
package main
