// Package world provides the dungeon grid, its generation and the visited map.
package world

import (
	"context"
	"iter"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/roll"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 5
	DefaultHeight = 5

	// Content draw: 1..monsterMax monster, ..treasureMax treasure, rest empty.
	contentDie  = 100
	monsterMax  = 30
	treasureMax = 55

	minTreasure = 5
	maxTreasure = 25
)

// Dungeon is a width x height grid of rooms. The entrance is the top-left
// cell and the exit the bottom-right one.
type Dungeon struct {
	Width    int
	Height   int
	Entrance entity.Position
	Exit     entity.Position
	rooms    [][]*Room
}

// NewDungeon creates a dungeon with no rooms placed yet.
func NewDungeon(width, height int) (*Dungeon, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.InvalidArgumentf("dungeon dimensions must be positive, got %dx%d", width, height).
			WithMeta("width", width).
			WithMeta("height", height)
	}

	rooms := make([][]*Room, height)
	for y := range rooms {
		rooms[y] = make([]*Room, width)
	}

	return &Dungeon{
		Width:    width,
		Height:   height,
		Entrance: entity.NewPosition(0, 0),
		Exit:     entity.NewPosition(width-1, height-1),
		rooms:    rooms,
	}, nil
}

// Generate builds a fully populated dungeon. The entrance is empty, the exit
// is an exit room, and every other cell draws d100: 1-30 monster scaled by
// difficulty, 31-55 treasure worth 5-25, otherwise empty.
func Generate(ctx context.Context, width, height, difficulty int, roller dice.Roller) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d, err := NewDungeon(width, height)
	if err != nil {
		return nil, err
	}
	if difficulty < 1 {
		return nil, errors.InvalidArgumentf("difficulty must be at least 1, got %d", difficulty)
	}

	var monsters, treasures int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := entity.NewPosition(x, y)

			var room *Room
			switch pos {
			case d.Entrance:
				room, err = NewRoom(RoomEmpty)
			case d.Exit:
				room, err = NewRoom(RoomExit)
			default:
				room, err = d.drawRoom(difficulty, roller)
			}
			if err != nil {
				return nil, errors.Wrapf(err, "failed to generate room at %s", pos)
			}

			switch room.Type {
			case RoomMonster:
				monsters++
			case RoomTreasure:
				treasures++
			}
			d.rooms[y][x] = room
		}
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.difficulty", difficulty),
		attribute.Int("dungeon.monster_rooms", monsters),
		attribute.Int("dungeon.treasure_rooms", treasures),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return d, nil
}

// drawRoom rolls the content of one ordinary cell.
func (d *Dungeon) drawRoom(difficulty int, roller dice.Roller) (*Room, error) {
	r, err := roller.Roll(contentDie)
	if err != nil {
		return nil, err
	}

	switch {
	case r <= monsterMax:
		m, err := entity.RandomMonster(difficulty, roller)
		if err != nil {
			return nil, err
		}
		return NewRoom(RoomMonster, WithMonster(m))
	case r <= treasureMax:
		amount, err := roll.Between(roller, minTreasure, maxTreasure)
		if err != nil {
			return nil, err
		}
		return NewRoom(RoomTreasure, WithTreasure(amount))
	default:
		return NewRoom(RoomEmpty)
	}
}

// IsPositionWithinBounds reports whether pos lies on the grid.
func (d *Dungeon) IsPositionWithinBounds(pos entity.Position) bool {
	return pos.X >= 0 && pos.X < d.Width && pos.Y >= 0 && pos.Y < d.Height
}

// GetRoomAtPosition returns the room at pos, or nil when none is there.
func (d *Dungeon) GetRoomAtPosition(pos entity.Position) *Room {
	if !d.IsPositionWithinBounds(pos) {
		return nil
	}
	return d.rooms[pos.Y][pos.X]
}

// SetRoomByPosition places room at pos, replacing any previous room.
func (d *Dungeon) SetRoomByPosition(pos entity.Position, room *Room) error {
	if !d.IsPositionWithinBounds(pos) {
		return errors.InvalidArgumentf("position %s is outside the %dx%d dungeon", pos, d.Width, d.Height)
	}
	if room == nil {
		return errors.InvalidArgumentf("room at %s must not be nil", pos)
	}
	d.rooms[pos.Y][pos.X] = room
	return nil
}

// MarkRoomVisited flags the room at pos as seen. Every reachable position
// has a room, so a missing one is a state integrity failure.
func (d *Dungeon) MarkRoomVisited(pos entity.Position) error {
	room := d.GetRoomAtPosition(pos)
	if room == nil {
		return errors.NotFoundf("no room at %s", pos).WithMeta("position", pos.Key())
	}
	room.Visited = true
	return nil
}

// RoomCount returns how many cells hold a room.
func (d *Dungeon) RoomCount() int {
	n := 0
	for range d.Rooms() {
		n++
	}
	return n
}

// Rooms iterates placed rooms in row-major order.
func (d *Dungeon) Rooms() iter.Seq2[entity.Position, *Room] {
	return func(yield func(entity.Position, *Room) bool) {
		for y, row := range d.rooms {
			for x, room := range row {
				if room == nil {
					continue
				}
				if !yield(entity.NewPosition(x, y), room) {
					return
				}
			}
		}
	}
}

// RenderVisitedMap draws the grid top to bottom with two-character cells:
// "@ " for the player, "? " for unseen rooms and the room glyph otherwise.
func (d *Dungeon) RenderVisitedMap(playerX, playerY int) string {
	out := make([]string, 0, d.Height)
	for y := 0; y < d.Height; y++ {
		var row strings.Builder
		for x := 0; x < d.Width; x++ {
			if x == playerX && y == playerY {
				row.WriteString("@ ")
				continue
			}

			room := d.rooms[y][x]
			if room == nil || !room.Visited {
				row.WriteString("? ")
				continue
			}
			row.WriteString(room.Type.Glyph())
		}
		out = append(out, strings.TrimRight(row.String(), " "))
	}
	return strings.Join(out, "\n")
}
