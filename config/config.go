// SPDX-License-Identifier: MIT

// Package config loads application settings from a YAML file, a .env file
// and CHAOS_* environment variables, in that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// GameConfig holds defaults for random-mode runs.
type GameConfig struct {
	Sides           int     `yaml:"sides"`
	Points          int     `yaml:"points"`
	Fraction        float64 `yaml:"fraction"`
	RotationDeg     float64 `yaml:"rotation_deg"`
	MaxSeedAttempts int     `yaml:"max_seed_attempts"`
}

// SequenceConfig holds defaults for sequence-driven runs.
type SequenceConfig struct {
	Path        string  `yaml:"path"`
	Fraction    float64 `yaml:"fraction"`
	Radius      float64 `yaml:"radius"`
	RotationDeg float64 `yaml:"rotation_deg"`
	SkipHeaders bool    `yaml:"skip_headers"`
	Upper       bool    `yaml:"upper"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port            string `yaml:"port"`
	ReadTimeoutSec  int    `yaml:"read_timeout_secs"`
	WriteTimeoutSec int    `yaml:"write_timeout_secs"`
	MaxPoints       int    `yaml:"max_points"`
	MaxSides        int    `yaml:"max_sides"`
	MaxSeedAttempts int    `yaml:"max_seed_attempts"`
}

// StoreConfig locates the run database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// AppConfig is the root configuration.
type AppConfig struct {
	Game     GameConfig     `yaml:"game"`
	Sequence SequenceConfig `yaml:"sequence"`
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
}

// Load reads the YAML file at path. A missing file yields defaults.
// Environment overrides are applied last.
func Load(path string) (*AppConfig, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}
	applyDefaults(cfg)
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Save writes cfg to path as YAML, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Game: GameConfig{
			Sides:    3,
			Points:   50000,
			Fraction: 0.5,
		},
		Sequence: SequenceConfig{
			Path:     "HumanY_data.txt",
			Fraction: 0.5,
			Radius:   2,
		},
		Server: ServerConfig{
			Port:            "3000",
			ReadTimeoutSec:  10,
			WriteTimeoutSec: 30,
			MaxPoints:       1_000_000,
			MaxSides:        1024,
			MaxSeedAttempts: 100_000,
		},
		Store: StoreConfig{Path: "data/chaosgame.db"},
		Log:   LogConfig{Level: "info"},
	}
}

func applyDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Game.Sides == 0 {
		cfg.Game.Sides = def.Game.Sides
	}
	if cfg.Game.Points == 0 {
		cfg.Game.Points = def.Game.Points
	}
	if cfg.Sequence.Radius == 0 {
		cfg.Sequence.Radius = def.Sequence.Radius
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.ReadTimeoutSec == 0 {
		cfg.Server.ReadTimeoutSec = def.Server.ReadTimeoutSec
	}
	if cfg.Server.WriteTimeoutSec == 0 {
		cfg.Server.WriteTimeoutSec = def.Server.WriteTimeoutSec
	}
	if cfg.Server.MaxPoints == 0 {
		cfg.Server.MaxPoints = def.Server.MaxPoints
	}
	if cfg.Server.MaxSides == 0 {
		cfg.Server.MaxSides = def.Server.MaxSides
	}
	if cfg.Server.MaxSeedAttempts == 0 {
		cfg.Server.MaxSeedAttempts = def.Server.MaxSeedAttempts
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = def.Store.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}

// applyEnv overrides cfg from CHAOS_* variables.
func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("CHAOS_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("CHAOS_DB_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("CHAOS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CHAOS_SEQUENCE_PATH"); v != "" {
		cfg.Sequence.Path = v
	}
	if v := os.Getenv("CHAOS_LOG_DEVELOPMENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CHAOS_LOG_DEVELOPMENT: %w", err)
		}
		cfg.Log.Development = b
	}
	if v := os.Getenv("CHAOS_MAX_POINTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHAOS_MAX_POINTS: %w", err)
		}
		cfg.Server.MaxPoints = n
	}

	return nil
}
