package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/save"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

// Save writes the whole game to the store. The outcome is reported to the
// player; the error is returned for callers that care.
func (g *Game) Save(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.save")
	defer span.End()

	snap := save.NewSnapshot(g.player, g.dungeon, g.clock.Now())
	if err := g.store.Save(ctx, snap); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		g.logger.ErrorContext(ctx, "failed to save game", "error", err)
		g.console.Writeln("Could not save the game.")
		return err
	}

	span.SetAttributes(attribute.String("save.saved_at", snap.SavedAt))
	g.logger.InfoContext(ctx, "game saved", "saved_at", snap.SavedAt)
	g.console.Writeln("Game saved.")
	return nil
}

// Load replaces the current game with the saved one and re-enters the
// player's room. A missing or unreadable save leaves the current game as is.
func (g *Game) Load(ctx context.Context) error {
	loaded, err := g.loadSnapshot(ctx)
	if err != nil || !loaded {
		return err
	}

	g.console.Writeln("Game loaded.")
	return g.EnterRoom(ctx)
}

// loadSnapshot swaps in the saved game. It reports false, with the reason
// printed, when there is nothing usable to load.
func (g *Game) loadSnapshot(ctx context.Context) (bool, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.load")
	defer span.End()

	snap, err := g.store.Load(ctx)
	if err == nil {
		player, dungeon, rerr := snap.Restore()
		if rerr == nil {
			// Older saves may not have flagged the current room.
			if err := dungeon.MarkRoomVisited(player.Position()); err != nil {
				return false, err
			}

			g.player = player
			g.dungeon = dungeon
			g.state = StatePlaying

			span.SetAttributes(attribute.String("save.saved_at", snap.SavedAt))
			g.logger.InfoContext(ctx, "game loaded",
				"player", player.Name(),
				"saved_at", snap.SavedAt)
			return true, nil
		}
		err = rerr
	}

	span.RecordError(err)
	switch {
	case errors.IsNotFound(err):
		g.console.Writeln("No saved game found.")
	case errors.IsDataLoss(err):
		span.SetStatus(codes.Error, "corrupted save")
		g.console.Writeln("Save file is corrupted.")
	default:
		span.SetStatus(codes.Error, "load failed")
		g.console.Writeln("Could not load the saved game.")
	}
	g.logger.WarnContext(ctx, "failed to load game", "error", err)
	return false, nil
}
