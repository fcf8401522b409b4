// Package config loads process settings from the environment, with an
// optional YAML settings file layered on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Settings struct {
	// TickInterval is the real-time length of one simulated week.
	TickInterval time.Duration `env:"BZSIM_TICK_INTERVAL" envDefault:"1500ms" yaml:"tick_interval"`
	// DataDir holds the achievements database. Empty means the user config dir.
	DataDir string `env:"BZSIM_DATA_DIR" yaml:"data_dir"`
	// Seed fixes the run's random source; 0 derives one from the clock.
	Seed int64 `env:"BZSIM_SEED" yaml:"seed"`
	// SettingsFile points at an optional YAML file overriding the above.
	SettingsFile string `env:"BZSIM_SETTINGS_FILE" yaml:"-"`
}

func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env settings: %w", err)
	}

	if s.SettingsFile != "" {
		raw, err := os.ReadFile(s.SettingsFile)
		if err != nil {
			return Settings{}, fmt.Errorf("read settings file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return Settings{}, fmt.Errorf("parse settings file: %w", err)
		}
	}

	if s.TickInterval <= 0 {
		return Settings{}, fmt.Errorf("tick interval must be positive, got %s", s.TickInterval)
	}
	return s, nil
}

// DatabasePath resolves the achievements database location, creating the
// directory if needed.
func (s Settings) DatabasePath() (string, error) {
	dir := s.DataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "bazhong-sim")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return filepath.Join(dir, "achievements.db"), nil
}
