package world

import (
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

// DungeonData is the serialized form of a Dungeon. Rooms are keyed by
// Position.Key so saves stay readable and stable across grid changes.
type DungeonData struct {
	Width    int                  `json:"width"`
	Height   int                  `json:"height"`
	Rooms    map[string]RoomData  `json:"rooms"`
	Entrance *entity.PositionData `json:"entrance,omitempty"`
	Exit     *entity.PositionData `json:"exit,omitempty"`
}

// ToData converts the dungeon to its serialized form.
func (d *Dungeon) ToData() DungeonData {
	entrance := d.Entrance.ToData()
	exit := d.Exit.ToData()
	data := DungeonData{
		Width:    d.Width,
		Height:   d.Height,
		Rooms:    make(map[string]RoomData, d.Width*d.Height),
		Entrance: &entrance,
		Exit:     &exit,
	}
	for pos, room := range d.Rooms() {
		data.Rooms[pos.Key()] = room.ToData()
	}
	return data
}

// DungeonFromData rebuilds a dungeon with fresh rooms. Missing entrance and
// exit fall back to the grid corners. Every cell must have a room and the
// exit cell must hold the exit.
func DungeonFromData(data DungeonData) (*Dungeon, error) {
	d, err := NewDungeon(data.Width, data.Height)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid dungeon record")
	}

	if data.Entrance != nil {
		d.Entrance = entity.PositionFromData(*data.Entrance)
	}
	if data.Exit != nil {
		d.Exit = entity.PositionFromData(*data.Exit)
	}
	if !d.IsPositionWithinBounds(d.Entrance) || !d.IsPositionWithinBounds(d.Exit) {
		return nil, errors.DataLossf("entrance %s or exit %s lies outside the %dx%d dungeon",
			d.Entrance, d.Exit, d.Width, d.Height)
	}

	for key, rd := range data.Rooms {
		pos, err := entity.ParsePositionKey(key)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid room key")
		}
		if !d.IsPositionWithinBounds(pos) {
			return nil, errors.DataLossf("room key %q lies outside the %dx%d dungeon", key, d.Width, d.Height)
		}

		room, err := RoomFromData(rd)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load room %s", key)
		}
		d.rooms[pos.Y][pos.X] = room
	}

	for y := range d.Height {
		for x := range d.Width {
			if d.rooms[y][x] == nil {
				return nil, errors.DataLossf("no room at %s", entity.NewPosition(x, y))
			}
		}
	}
	// A single-cell dungeon keeps its entrance room on the shared cell.
	if exit := d.GetRoomAtPosition(d.Exit); d.Exit != d.Entrance && exit.Type != RoomExit {
		return nil, errors.DataLossf("exit %s holds a %s room", d.Exit, exit.Type)
	}
	return d, nil
}
