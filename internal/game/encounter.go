package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/roll"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// EnterRoom describes the player's room and resolves whatever waits there.
// Treasure is collected and a live monster is fought; either way the room
// ends up empty. Resolution happens once, so re-entering a cleared room is
// quiet.
func (g *Game) EnterRoom(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.enter_room")
	defer span.End()

	pos := g.player.Position()
	room := g.dungeon.GetRoomAtPosition(pos)
	if room == nil {
		return errors.NotFoundf("no room at %s", pos)
	}
	span.SetAttributes(
		attribute.String("room.position", pos.Key()),
		attribute.String("room.type", string(room.Type)),
	)

	g.console.Writeln("")
	g.console.Writeln(fmt.Sprintf("You are in room %s.", pos))
	g.console.Writeln(room.Describe())

	if room.HasTreasure() {
		g.collectTreasure(ctx, room)
	}
	if room.HasLiveMonster() {
		if err := g.fight(ctx, span, room); err != nil {
			return err
		}
	}
	if room.Type == world.RoomExit {
		g.console.Writeln("One step more and you'll be out...")
	}

	g.console.Writeln("")
	return nil
}

func (g *Game) collectTreasure(ctx context.Context, room *world.Room) {
	amount := room.TakeTreasure()
	g.player.AddTreasure(amount)

	g.console.Writeln(fmt.Sprintf("You collect treasure worth %d. Score: %d", amount, g.player.Score()))
	g.logger.InfoContext(ctx, "treasure collected",
		"amount", amount,
		"score", g.player.Score())
}

// fight runs combat against the room's monster and rewards a victory with
// corpse coins and a short rest.
func (g *Game) fight(ctx context.Context, span trace.Span, room *world.Room) error {
	monster := room.Monster
	encounter := combat.NewEncounter(g.player, monster, g.roller)

	log, err := encounter.Fight(ctx)
	if err != nil {
		return errors.Wrapf(err, "combat with %s failed", monster.Name())
	}
	for _, line := range log {
		g.console.Writeln(line)
	}

	span.SetAttributes(
		attribute.String("combat.monster", monster.Name()),
		attribute.Int("combat.rounds", encounter.Rounds()),
	)
	g.logger.InfoContext(ctx, "combat resolved",
		"monster", monster.Name(),
		"rounds", encounter.Rounds(),
		"winner", encounter.Winner().Name(),
		"player_hp", g.player.Health())

	if !monster.IsDead() {
		return nil
	}

	room.ClearMonster()

	bonus, err := roll.Between(g.roller, minCorpseCoins, maxCorpseCoins)
	if err != nil {
		return errors.Wrap(err, "failed to roll corpse coins")
	}
	g.player.AddTreasure(bonus)
	g.console.Writeln(fmt.Sprintf("You find %d coins on the corpse. Score: %d", bonus, g.player.Score()))

	if healed := g.player.Heal(g.cfg.VictoryHeal); healed > 0 {
		g.console.Writeln(fmt.Sprintf("You catch your breath and recover %d HP. HP: %d", healed, g.player.Health()))
	}
	return nil
}
