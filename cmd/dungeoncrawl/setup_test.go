package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/config"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/roll"
	"github.com/samdwyer/dungeoncrawl/internal/save"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestApplyFlagsOnlyOverridesSetFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--width", "9", "--store", "memory", "--seed", "7"}))

	cfg := &config.Config{Width: 5, Height: 6, SaveBackend: config.BackendFile, LogLevel: "info"}
	applyFlags(cfg, cmd.Flags(), flags)

	assert.Equal(t, 9, cfg.Width)
	assert.Equal(t, 6, cfg.Height)
	assert.Equal(t, config.BackendMemory, cfg.SaveBackend)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"file", config.Config{SaveBackend: config.BackendFile, SavePath: filepath.Join(dir, "save.json")}},
		{"sqlite", config.Config{SaveBackend: config.BackendSQLite, SavePath: filepath.Join(dir, "save.db")}},
		{"memory", config.Config{SaveBackend: config.BackendMemory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := openStore(&tt.cfg)
			require.NoError(t, err)
			defer func() { _ = store.Close() }()

			exists, err := store.Exists(context.Background())
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}

	_, err := openStore(&config.Config{SaveBackend: "tape"})
	assert.Error(t, err)
}

func TestRunMapPrintsSavedGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	store, err := save.NewFileStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	dungeon, err := world.Generate(ctx, 2, 2, 1, roll.NewSeeded(3))
	require.NoError(t, err)
	require.NoError(t, dungeon.MarkRoomVisited(entity.NewPosition(0, 0)))
	player, err := entity.NewPlayer("Ada", 40)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, save.NewSnapshot(player, dungeon, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))))

	t.Setenv("DUNGEONCRAWL_SAVE_PATH", path)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"map"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Ada, saved 2026-01-02T03:04:05Z\n@ ?\n? ?\n")
}
