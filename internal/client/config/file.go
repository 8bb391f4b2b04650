package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/jobhunt/internal/flagx"
	"github.com/dmitrijs2005/jobhunt/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape. Empty fields leave the current value alone.
type fileConfig struct {
	DataDir        string          `json:"data_dir" yaml:"data_dir"`
	StorageDriver  string          `json:"storage_driver" yaml:"storage_driver"`
	DSN            string          `json:"dsn" yaml:"dsn"`
	SessionSecret  string          `json:"session_secret" yaml:"session_secret"`
	SessionTTL     *timex.Duration `json:"session_ttl" yaml:"session_ttl"`
	PasswordScheme string          `json:"password_scheme" yaml:"password_scheme"`
	LogLevel       string          `json:"log_level" yaml:"log_level"`
	LogBackend     string          `json:"log_backend" yaml:"log_backend"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return err
	}

	fc.apply(cfg)
	return nil
}

func (fc fileConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.DataDir, fc.DataDir)
	set(&cfg.StorageDriver, fc.StorageDriver)
	set(&cfg.DSN, fc.DSN)
	set(&cfg.SessionSecret, fc.SessionSecret)
	set(&cfg.PasswordScheme, fc.PasswordScheme)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogBackend, fc.LogBackend)
	if fc.SessionTTL != nil {
		cfg.SessionTTL = fc.SessionTTL.Duration
	}
}
