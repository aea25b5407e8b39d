// Package config defines service configuration and its loading order.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env vars
//   on top of them.
// - External errors are wrapped via this package's sentinels.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// DBPath locates the SQLite database file. The literal ":memory:"
	// selects a non-persistent store.
	DBPath string `koanf:"db_path"`
}

// New returns the default configuration. Context is accepted first per
// the project-wide convention; it is reserved for future loading hooks.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":8090",
		DBPath:   "laneboard.db",
	}
}
