// Package config loads CLI defaults from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults for the torsor command. Flags override every field.
type Config struct {
	// Format is the output format, text or json.
	Format string `env:"TORSOR_FORMAT" envDefault:"text"`

	// DB is the run history database. Empty disables recording.
	DB string `env:"TORSOR_DB"`

	// ModuleDir is the root of the module the probe package lives in.
	ModuleDir string `env:"TORSOR_MODULE_DIR" envDefault:"."`

	// ProbeDir is the probe package directory. Empty means the harness
	// default relative to ModuleDir.
	ProbeDir string `env:"TORSOR_PROBE_DIR"`

	LogLevel string `env:"TORSOR_LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel. Unknown names are an error.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("TORSOR_LOG_LEVEL: %w", err)
	}
	return level, nil
}
