// Package save persists whole-game snapshots. A snapshot is one JSON document
// holding the player, the dungeon and the time it was written; every backend
// stores that document verbatim.
package save

import (
	"encoding/json"
	"time"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Snapshot is the persisted game document.
type Snapshot struct {
	Player  entity.PlayerData  `json:"player"`
	Dungeon *world.DungeonData `json:"dungeon"`
	SavedAt string             `json:"savedAt"`
}

// NewSnapshot captures the current game state.
func NewSnapshot(player *entity.Player, dungeon *world.Dungeon, at time.Time) *Snapshot {
	d := dungeon.ToData()
	return &Snapshot{
		Player:  player.ToData(),
		Dungeon: &d,
		SavedAt: at.UTC().Format(time.RFC3339),
	}
}

// Restore rebuilds fresh player and dungeon objects from the snapshot.
func (s *Snapshot) Restore() (*entity.Player, *world.Dungeon, error) {
	if s.Dungeon == nil {
		return nil, nil, errors.DataLoss("save has no dungeon")
	}

	dungeon, err := world.DungeonFromData(*s.Dungeon)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to restore dungeon")
	}
	player, err := entity.PlayerFromData(s.Player)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to restore player")
	}
	if !dungeon.IsPositionWithinBounds(player.Position()) {
		return nil, nil, errors.DataLossf("player position %s lies outside the dungeon", player.Position())
	}
	return player, dungeon, nil
}

// Encode renders the snapshot as an indented JSON document.
func Encode(s *Snapshot) ([]byte, error) {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode save")
	}
	return raw, nil
}

// Decode parses a saved document. Missing player fields take their defaults;
// unreadable JSON or a missing dungeon is a malformed save.
func Decode(raw []byte) (*Snapshot, error) {
	s := Snapshot{Player: entity.DefaultPlayerData()}
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "save is not valid JSON")
	}
	if s.Dungeon == nil {
		return nil, errors.DataLoss("save has no dungeon")
	}
	return &s, nil
}
