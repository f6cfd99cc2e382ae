package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.SaveBackend)
	assert.Equal(t, "var/save.json", cfg.SavePath)
	assert.Equal(t, "default", cfg.SaveSlot)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 5, cfg.Height)
	assert.Equal(t, 0, cfg.Difficulty)
	assert.Equal(t, 100, cfg.PlayerHealth)
	assert.Equal(t, 10, cfg.VictoryHeal)
	assert.False(t, cfg.TUI)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DUNGEONCRAWL_SAVE_BACKEND", "redis")
	t.Setenv("DUNGEONCRAWL_REDIS_ADDR", "cache:6380")
	t.Setenv("DUNGEONCRAWL_WIDTH", "8")
	t.Setenv("DUNGEONCRAWL_SEED", "42")
	t.Setenv("DUNGEONCRAWL_TUI", "true")
	t.Setenv("DUNGEONCRAWL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.SaveBackend)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 8, cfg.Width)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.TUI)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadBadValue(t *testing.T) {
	t.Setenv("DUNGEONCRAWL_WIDTH", "wide")

	_, err := Load()
	assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			SaveBackend:  BackendFile,
			SavePath:     "save.json",
			Width:        5,
			Height:       5,
			PlayerHealth: 100,
			VictoryHeal:  10,
			LogLevel:     "warn",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"negative difficulty", func(c *Config) { c.Difficulty = -1 }},
		{"zero health", func(c *Config) { c.PlayerHealth = 0 }},
		{"negative heal", func(c *Config) { c.VictoryHeal = -5 }},
		{"unknown backend", func(c *Config) { c.SaveBackend = "floppy" }},
		{"redis without address", func(c *Config) { c.SaveBackend = BackendRedis; c.RedisAddr = "" }},
		{"sqlite without path", func(c *Config) { c.SaveBackend = BackendSQLite; c.SavePath = "" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.True(t, errors.IsInvalidArgument(cfg.Validate()))
		})
	}
}
