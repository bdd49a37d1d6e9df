// Package config loads headsum CLI settings from a TOML file.
//
// Settings resolve in order: built-in defaults, then the config file, then
// command-line flags (applied by the caller).
package config
