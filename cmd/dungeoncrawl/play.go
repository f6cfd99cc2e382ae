package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/pkg/clock"
	"github.com/samdwyer/dungeoncrawl/internal/roll"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume a game",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown := setupTelemetry(ctx, cfg)
	defer shutdown()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close save store", "error", err)
		}
	}()

	var console game.Console = ui.NewLineConsole(os.Stdin, os.Stdout)
	if cfg.TUI {
		screen, err := ui.NewScreenConsole()
		if err != nil {
			return err
		}
		defer screen.Close()
		console = screen
	}

	g, err := game.New(&game.Config{
		Console:      console,
		Store:        store,
		Roller:       roll.New(cfg.Seed),
		Clock:        clock.New(),
		Logger:       logger,
		Width:        cfg.Width,
		Height:       cfg.Height,
		PlayerHealth: cfg.PlayerHealth,
		VictoryHeal:  cfg.VictoryHeal,
		Difficulty:   cfg.Difficulty,
	})
	if err != nil {
		return err
	}

	return g.Run(ctx)
}
