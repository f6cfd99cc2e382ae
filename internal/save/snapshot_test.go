package save_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/save"
)

func TestDecodeDefaultsMissingPlayer(t *testing.T) {
	snap, err := save.Decode([]byte(`{"dungeon":{"width":2,"height":2,"rooms":{}}}`))
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultPlayerData(), snap.Player)
	assert.Empty(t, snap.SavedAt)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `player: yes`},
		{"missing dungeon", `{"player":{"hp":10}}`},
		{"null dungeon", `{"dungeon":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := save.Decode([]byte(tt.raw))
			assert.True(t, errors.IsDataLoss(err), "got %v", err)
		})
	}
}

func TestRestore(t *testing.T) {
	raw := `{
	  "player": {"hp": 40, "maxHp": 100, "score": 12, "x": 1, "y": 0, "name": "Bo",
	             "weapon": {"name": "Sword", "damage": 50, "type": "sword"}, "inventory": []},
	  "dungeon": {"width": 3, "height": 1, "rooms": {
	    "0,0": {"type": "empty", "visited": true},
	    "1,0": {"type": "treasure", "treasure": 9},
	    "2,0": {"type": "exit"}
	  }},
	  "savedAt": "2026-02-02T10:00:00Z"
	}`

	snap, err := save.Decode([]byte(raw))
	require.NoError(t, err)
	player, dungeon, err := snap.Restore()
	require.NoError(t, err)

	assert.Equal(t, 40, player.Health())
	assert.Equal(t, 100, player.MaxHealth())
	assert.Equal(t, entity.Sword, player.Weapon())
	assert.Equal(t, []entity.Weapon{entity.Sword}, player.Inventory())
	assert.Equal(t, entity.NewPosition(1, 0), player.Position())
	assert.Equal(t, 9, dungeon.GetRoomAtPosition(entity.NewPosition(1, 0)).Treasure)
}

func TestRestoreRejectsBadState(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown room type", `{"dungeon":{"width":1,"height":1,"rooms":{"0,0":{"type":"pit"}}}}`},
		{"player outside dungeon", `{"player":{"x":3,"y":3},"dungeon":{"width":1,"height":1,"rooms":{"0,0":{"type":"exit"}}}}`},
		{"dead player", `{"player":{"hp":0},"dungeon":{"width":1,"height":1,"rooms":{"0,0":{"type":"exit"}}}}`},
		{"missing room", `{"dungeon":{"width":3,"height":1,"rooms":{"0,0":{"type":"empty"},"2,0":{"type":"exit"}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := save.Decode([]byte(tt.raw))
			require.NoError(t, err)
			_, _, err = snap.Restore()
			assert.True(t, errors.IsDataLoss(err), "got %v", err)
		})
	}
}
