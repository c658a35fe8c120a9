// Package config loads and validates the TOML configuration shared by the
// mazecache CLI and daemon.
//
// Load resolves which file to read (an explicit path, then the user config
// directory, then a mazecache.toml in the working directory), fills in
// defaults for anything the file omits, expands ~ in paths, and applies
// environment overrides such as TVMAZE_BASE_URL before validating. Callers
// therefore always see absolute directories, a canonical log format, and a
// provider URL that has already passed the scheme check.
package config
