package game

import (
	"context"
	"fmt"
	"strings"
)

// Direction is a compass move on the grid.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Delta returns the grid offset of one step. North is up (y decreases).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

var aliases = map[string]string{
	"n": string(North),
	"s": string(South),
	"e": string(East),
	"w": string(West),
}

// Handle dispatches one line of player input. Blank lines are ignored and
// unknown commands print a hint.
func (g *Game) Handle(ctx context.Context, line string) error {
	cmd := normalize(line)
	if cmd == "" {
		return nil
	}
	if full, ok := aliases[cmd]; ok {
		cmd = full
	}

	switch cmd {
	case string(North), string(South), string(East), string(West):
		return g.Move(ctx, Direction(cmd))
	case "look":
		g.console.Writeln(g.currentRoomText())
	case "stats":
		g.stats()
	case "map":
		g.showMap()
	case "help":
		g.help()
	case "save":
		// Failures are reported to the player and logged.
		_ = g.Save(ctx)
	case "load":
		return g.Load(ctx)
	case "quit", "exit":
		g.console.Writeln("Bye!")
		g.state = StateQuit
	default:
		g.console.Writeln("Unknown command. Type 'help'.")
	}
	return nil
}

// Move steps the player one cell and resolves the room entered. Moves off
// the grid are refused without changing state.
func (g *Game) Move(ctx context.Context, dir Direction) error {
	dx, dy := dir.Delta()
	next := g.player.ForecastedMove(dx, dy)

	if !g.dungeon.IsPositionWithinBounds(next) {
		g.console.Writeln("You can't go that way.")
		return nil
	}

	g.player.Move(next)
	if err := g.dungeon.MarkRoomVisited(next); err != nil {
		return err
	}
	g.logger.DebugContext(ctx, "player moved",
		"direction", string(dir),
		"position", next.Key())

	return g.EnterRoom(ctx)
}

func (g *Game) currentRoomText() string {
	room := g.dungeon.GetRoomAtPosition(g.player.Position())
	if room == nil {
		return "There is nothing here."
	}
	return room.Describe()
}

func (g *Game) stats() {
	inv := g.player.Inventory()
	names := make([]string, 0, len(inv))
	for _, w := range inv {
		names = append(names, w.Name())
	}
	invText := "(empty)"
	if len(names) > 0 {
		invText = strings.Join(names, ", ")
	}

	weapon := g.player.Weapon()
	g.console.Writeln(fmt.Sprintf("Name: %s", g.player.Name()))
	g.console.Writeln(fmt.Sprintf("HP: %d/%d", g.player.Health(), g.player.MaxHealth()))
	g.console.Writeln(fmt.Sprintf("Score: %d", g.player.Score()))
	g.console.Writeln(fmt.Sprintf("Weapon: %s (%d damage)", weapon.Name(), weapon.Damage()))
	g.console.Writeln(fmt.Sprintf("Inventory: %s", invText))
}

func (g *Game) showMap() {
	pos := g.player.Position()
	g.console.Write(g.dungeon.RenderVisitedMap(pos.X, pos.Y) + "\n")
	g.console.Writeln(Legend)
}

// Legend explains the visited map glyphs.
const Legend = "Legend: @=you, ?=unknown, E=empty, M=monster room, T=treasure room, X=exit"

func (g *Game) help() {
	g.console.Writeln("Commands:")
	g.console.Writeln("  north/south/east/west (or n/s/e/w)")
	g.console.Writeln("  look, stats, map")
	g.console.Writeln("  save, load")
	g.console.Writeln("  help, quit")
}
