// Package daemon coordinates the long-running lookup service process.
//
// It wires configuration, the cache store, and the resolution engine into a
// single lifecycle with flock-based locking to prevent multiple instances.
// The daemon runs preflight checks before touching the database, owns the
// HTTP API server, and reports runtime status with cache statistics.
//
// Keep orchestration logic here: resolution behavior lives in the resolve
// package while the daemon focuses on startup, shutdown, and the transport
// surface.
package daemon
