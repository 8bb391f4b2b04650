package config

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	SchemeArgon2id  = "argon2id"
	SchemePlaintext = "plaintext"
)

// Config holds runtime settings for the JobHunt CLI.
type Config struct {
	DataDir        string
	StorageDriver  string
	DSN            string
	SessionSecret  string
	SessionTTL     time.Duration
	PasswordScheme string
	LogLevel       string
	LogBackend     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".jobhunt"
	c.StorageDriver = DriverSQLite
	c.DSN = ""
	c.SessionSecret = ""
	c.SessionTTL = 0
	c.PasswordScheme = SchemeArgon2id
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// LoadConfig applies defaults, then the optional config file, then flags
// found in args (usually os.Args[1:]), and validates the result.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		if c.DSN == "" {
			return fmt.Errorf("storage driver %q requires a dsn", c.StorageDriver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}

	switch c.PasswordScheme {
	case SchemeArgon2id, SchemePlaintext:
	default:
		return fmt.Errorf("unknown password scheme %q", c.PasswordScheme)
	}

	if c.SessionTTL < 0 {
		return fmt.Errorf("session ttl must not be negative")
	}
	return nil
}

// SQLitePath is the database file used by the sqlite driver.
func (c *Config) SQLitePath() string {
	if c.DSN != "" {
		return c.DSN
	}
	return filepath.Join(c.DataDir, "jobhunt.db")
}
