// Package config resolves the application settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
)

// Config holds the resolved runtime settings. DataDir defaults to
// ~/.crafttable and anchors every persisted file.
type Config struct {
	DataDir string `env:"CRAFTTABLE_DATA_DIR"`
	// Agent pre-fills the agent registration field.
	Agent string `env:"CRAFTTABLE_AGENT"`
	// LogFile overrides the default log location inside DataDir.
	LogFile string `env:"CRAFTTABLE_LOG_FILE"`
}

// Load parses the environment and fills in defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".crafttable")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "crafttable.log")
	}
	return cfg, nil
}

// HistoryPath returns the history document location.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "historico_registros.json")
}

// PrefsPath returns the theme/preferences document location.
func (c *Config) PrefsPath() string {
	return filepath.Join(c.DataDir, "config_tema.json")
}

// LastUserPath returns the last-seen username file location.
func (c *Config) LastUserPath() string {
	return filepath.Join(c.DataDir, "ultimo_usuario.tmp")
}
