// Package config loads runtime settings from the environment.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

// Save backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds game configuration options.
type Config struct {
	SaveBackend string `env:"DUNGEONCRAWL_SAVE_BACKEND" envDefault:"file"`
	SavePath    string `env:"DUNGEONCRAWL_SAVE_PATH" envDefault:"var/save.json"`
	SaveSlot    string `env:"DUNGEONCRAWL_SAVE_SLOT" envDefault:"default"`
	RedisAddr   string `env:"DUNGEONCRAWL_REDIS_ADDR" envDefault:"localhost:6379"`

	Width        int `env:"DUNGEONCRAWL_WIDTH" envDefault:"5"`
	Height       int `env:"DUNGEONCRAWL_HEIGHT" envDefault:"5"`
	PlayerHealth int `env:"DUNGEONCRAWL_PLAYER_HEALTH" envDefault:"100"`
	VictoryHeal  int `env:"DUNGEONCRAWL_VICTORY_HEAL" envDefault:"10"`

	// Difficulty scales monster stats. Zero asks the player at new game.
	Difficulty int `env:"DUNGEONCRAWL_DIFFICULTY" envDefault:"0"`

	// Seed for random number generation. A seed of 0 uses a crypto source.
	Seed int64 `env:"DUNGEONCRAWL_SEED" envDefault:"0"`

	TUI       bool   `env:"DUNGEONCRAWL_TUI" envDefault:"false"`
	LogLevel  string `env:"DUNGEONCRAWL_LOG_LEVEL" envDefault:"warn"`
	Telemetry bool   `env:"DUNGEONCRAWL_TELEMETRY" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return cfg, nil
}

// Validate checks option ranges.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.InvalidArgumentf("dungeon size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Difficulty < 0 {
		return errors.InvalidArgumentf("difficulty must not be negative, got %d", c.Difficulty)
	}
	if c.PlayerHealth <= 0 {
		return errors.InvalidArgumentf("player health must be positive, got %d", c.PlayerHealth)
	}
	if c.VictoryHeal < 0 {
		return errors.InvalidArgumentf("victory heal must not be negative, got %d", c.VictoryHeal)
	}

	switch c.SaveBackend {
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
	default:
		return errors.InvalidArgumentf("unknown save backend %q", c.SaveBackend)
	}
	if c.SaveBackend == BackendRedis && c.RedisAddr == "" {
		return errors.InvalidArgument("redis backend needs an address")
	}
	if (c.SaveBackend == BackendFile || c.SaveBackend == BackendSQLite) && c.SavePath == "" {
		return errors.InvalidArgumentf("%s backend needs a save path", c.SaveBackend)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn, errors.InvalidArgumentf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}
