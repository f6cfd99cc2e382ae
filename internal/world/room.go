package world

import (
	"fmt"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

// RoomType is the content kind of a dungeon cell.
type RoomType string

const (
	RoomEmpty    RoomType = "empty"
	RoomMonster  RoomType = "monster"
	RoomTreasure RoomType = "treasure"
	RoomExit     RoomType = "exit"
)

// ParseRoomType validates a serialized room type.
func ParseRoomType(s string) (RoomType, error) {
	switch t := RoomType(s); t {
	case RoomEmpty, RoomMonster, RoomTreasure, RoomExit:
		return t, nil
	default:
		return "", errors.DataLossf("unknown room type %q", s)
	}
}

// Glyph returns the two-character visited-map cell for the room type.
func (t RoomType) Glyph() string {
	switch t {
	case RoomExit:
		return "X "
	case RoomMonster:
		return "M "
	case RoomTreasure:
		return "T "
	case RoomEmpty:
		return "E "
	default:
		return ". "
	}
}

// Room is one dungeon cell. A monster room holds its monster and a treasure
// room holds its amount until the encounter is resolved; resolving flips the
// room to empty and drops the payload.
type Room struct {
	Type     RoomType
	Monster  *entity.Monster
	Treasure int
	Visited  bool
}

// RoomOption configures a room at construction.
type RoomOption func(*roomSpec)

type roomSpec struct {
	monster  *entity.Monster
	treasure *int
	visited  bool
}

// WithMonster places a monster in the room.
func WithMonster(m *entity.Monster) RoomOption {
	return func(s *roomSpec) { s.monster = m }
}

// WithTreasure places a treasure amount in the room.
func WithTreasure(amount int) RoomOption {
	return func(s *roomSpec) { s.treasure = &amount }
}

// Visited marks the room as already seen.
func Visited() RoomOption {
	return func(s *roomSpec) { s.visited = true }
}

// NewRoom creates a room of the given type. A monster room needs a monster
// and a treasure room needs a positive amount; payloads given to other
// room types are dropped.
func NewRoom(t RoomType, opts ...RoomOption) (*Room, error) {
	var spec roomSpec
	for _, opt := range opts {
		opt(&spec)
	}

	room := &Room{Type: t, Visited: spec.visited}
	switch t {
	case RoomMonster:
		if spec.monster == nil {
			return nil, errors.InvalidArgument("monster room must have a monster")
		}
		room.Monster = spec.monster
	case RoomTreasure:
		if spec.treasure == nil {
			return nil, errors.InvalidArgument("treasure room must have a treasure amount")
		}
		if *spec.treasure <= 0 {
			return nil, errors.InvalidArgumentf("treasure must be positive, got %d", *spec.treasure)
		}
		room.Treasure = *spec.treasure
	case RoomEmpty, RoomExit:
	default:
		return nil, errors.InvalidArgumentf("unknown room type %q", t)
	}
	return room, nil
}

// Describe returns the text shown when the player enters or looks around.
func (r *Room) Describe() string {
	switch r.Type {
	case RoomTreasure:
		return fmt.Sprintf("You see a treasure chest containing %d gold coins!", r.Treasure)
	case RoomMonster:
		if r.Monster == nil {
			return "Something was here once."
		}
		return fmt.Sprintf("A wild %s appears!", r.Monster.Name())
	case RoomExit:
		return "This room contains the exit. Freedom is near!"
	default:
		return "The room is empty."
	}
}

// HasLiveMonster reports whether an unresolved monster waits in the room.
func (r *Room) HasLiveMonster() bool {
	return r.Type == RoomMonster && r.Monster != nil && !r.Monster.IsDead()
}

// HasTreasure reports whether uncollected treasure waits in the room.
func (r *Room) HasTreasure() bool {
	return r.Type == RoomTreasure && r.Treasure > 0
}

// TakeTreasure empties the chest, flips the room to empty and returns the amount.
func (r *Room) TakeTreasure() int {
	if r.Type != RoomTreasure {
		return 0
	}
	amount := r.Treasure
	r.Treasure = 0
	r.Type = RoomEmpty
	return amount
}

// ClearMonster drops the monster and flips the room to empty.
func (r *Room) ClearMonster() {
	if r.Type != RoomMonster {
		return
	}
	r.Monster = nil
	r.Type = RoomEmpty
}

// RoomData is the serialized form of a Room.
type RoomData struct {
	Type     string              `json:"type"`
	Monster  *entity.MonsterData `json:"monster"`
	Treasure *int                `json:"treasure"`
	Visited  bool                `json:"visited"`
}

// ToData converts the room to its serialized form.
func (r *Room) ToData() RoomData {
	d := RoomData{Type: string(r.Type), Visited: r.Visited}
	if r.Monster != nil {
		md := r.Monster.ToData()
		d.Monster = &md
	}
	if r.Type == RoomTreasure {
		amount := r.Treasure
		d.Treasure = &amount
	}
	return d
}

// RoomFromData rebuilds a fresh room. An unknown type is a malformed save.
func RoomFromData(d RoomData) (*Room, error) {
	t, err := ParseRoomType(d.Type)
	if err != nil {
		return nil, err
	}

	opts := []RoomOption{}
	if d.Visited {
		opts = append(opts, Visited())
	}
	if d.Monster != nil {
		m, err := entity.MonsterFromData(*d.Monster)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMonster(m))
	}
	if d.Treasure != nil {
		opts = append(opts, WithTreasure(*d.Treasure))
	}

	room, err := NewRoom(t, opts...)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid room record")
	}
	return room, nil
}
