// Package main is the entry point for the dungeon crawler.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dungeoncrawl",
	Short: "A turn-based text dungeon crawl",
	Long: `Explore a grid of rooms, collect treasure, fight monsters and find the exit.
Running without a subcommand starts a game.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	addFlags(rootCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mapCmd)
}
