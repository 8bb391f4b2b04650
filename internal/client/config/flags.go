package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/jobhunt/internal/flagx"
)

var knownFlags = []string{"-d", "-s", "-dsn", "-p", "-t", "-l", "-log"}

// parseFlags overlays cfg with the flags it knows about. Other arguments,
// including -c/-config, are filtered out first so they do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("jobhunt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver (sqlite, postgres, memory)")
	fs.StringVar(&cfg.DSN, "dsn", cfg.DSN, "database dsn")
	fs.StringVar(&cfg.PasswordScheme, "p", cfg.PasswordScheme, "password scheme (argon2id, plaintext)")
	fs.DurationVar(&cfg.SessionTTL, "t", cfg.SessionTTL, "session lifetime, 0 = until logout")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "log", cfg.LogBackend, "log backend (slog, zerolog)")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
