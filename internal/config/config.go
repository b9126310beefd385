// Package config loads cubealg settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/SeamusWaldron/cubealg"
)

// Config holds settings shared by all commands. Command-line flags override these values.
type Config struct {
	DBPath   string `env:"CUBEALG_DB"`
	MaxDepth int    `env:"CUBEALG_MAX_DEPTH" envDefault:"64"`
	MaxMoves int    `env:"CUBEALG_MAX_MOVES" envDefault:"100000"`
	Cancel   bool   `env:"CUBEALG_CANCEL" envDefault:"false"`
	Verbose  bool   `env:"CUBEALG_VERBOSE" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxDepth < 1 {
		return Config{}, fmt.Errorf("CUBEALG_MAX_DEPTH must be positive, got %d", cfg.MaxDepth)
	}
	if cfg.MaxMoves < 1 {
		return Config{}, fmt.Errorf("CUBEALG_MAX_MOVES must be positive, got %d", cfg.MaxMoves)
	}
	return cfg, nil
}

// Options converts the settings into library options.
func (c Config) Options() []cubealg.Option {
	return []cubealg.Option{
		cubealg.WithMaxDepth(c.MaxDepth),
		cubealg.WithMaxMoves(c.MaxMoves),
		cubealg.WithCancellation(c.Cancel),
	}
}

// DefaultDBPath returns the default library path in the user's home directory.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubealg", "cubealg.db"), nil
}

// ResolveDBPath returns the configured library path, falling back to the default.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	return DefaultDBPath()
}
