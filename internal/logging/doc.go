// Package logging builds the slog loggers used by every mazecache process.
//
// New constructs a logger from Options: console or JSON output, level
// plumbing through a LevelVar, source locations once the level drops to
// debug, and fan-out to stdout plus the daemon log file. The Field
// constants and context helpers keep attribute names consistent, so a
// series ID logged by the resolver matches the one logged by the HTTP API
// and lines stay greppable end to end. NewNop returns a discard logger for
// tests and wiring code that cannot fail.
package logging
