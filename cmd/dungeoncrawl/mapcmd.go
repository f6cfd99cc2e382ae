package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/game"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the visited map of the saved game",
	RunE:  runMap,
}

func runMap(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	newLogger(cfg)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snap, err := store.Load(cmd.Context())
	if errors.IsNotFound(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved game found.")
		return nil
	}
	if err != nil {
		return err
	}

	player, dungeon, err := snap.Restore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	pos := player.Position()
	fmt.Fprintf(out, "%s, saved %s\n", player.Name(), snap.SavedAt)
	fmt.Fprintln(out, dungeon.RenderVisitedMap(pos.X, pos.Y))
	fmt.Fprintln(out, game.Legend)
	return nil
}
