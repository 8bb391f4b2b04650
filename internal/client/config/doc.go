// Package config loads runtime configuration for the JobHunt CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string     data directory holding the SQLite database
//	-s string     storage driver: sqlite, postgres or memory
//	-dsn string   database DSN (required for postgres)
//	-p string     password scheme for new accounts: argon2id or plaintext
//	-t duration   session lifetime, 0 keeps sessions until logout
//	-l string     log level: debug, info, warn, error
//	-log string   log backend: slog or zerolog
//
// # File schema
//
// Durations use timex.Duration, so they may be strings like "12h" or
// integer nanoseconds:
//
//	{
//	  "data_dir": "~/.jobhunt",
//	  "storage_driver": "sqlite",
//	  "session_ttl": "720h",
//	  "password_scheme": "argon2id",
//	  "log_level": "info",
//	  "log_backend": "zerolog"
//	}
package config
