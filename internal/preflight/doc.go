// Package preflight provides readiness checks for the filesystem paths and
// network bind the lookup daemon depends on.
//
// The daemon runs the full check list before opening the database; a failed
// required check aborts start so the process never limps along with an
// unwritable data directory. Disk space is advisory only -- a full disk is
// logged loudly but does not block start.
package preflight
