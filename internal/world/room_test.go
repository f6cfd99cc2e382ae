package world

import (
	"encoding/json"
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

func mustMonster(t *testing.T, name string, health, damage int) *entity.Monster {
	t.Helper()
	m, err := entity.NewMonster(name, health, damage)
	if err != nil {
		t.Fatalf("NewMonster failed: %v", err)
	}
	return m
}

func TestNewRoomValidation(t *testing.T) {
	if _, err := NewRoom(RoomMonster); !errors.IsInvalidArgument(err) {
		t.Errorf("monster room without monster error = %v, want invalid argument", err)
	}
	if _, err := NewRoom(RoomTreasure); !errors.IsInvalidArgument(err) {
		t.Errorf("treasure room without amount error = %v, want invalid argument", err)
	}
	if _, err := NewRoom(RoomTreasure, WithTreasure(-1)); !errors.IsInvalidArgument(err) {
		t.Errorf("negative treasure error = %v, want invalid argument", err)
	}
	if _, err := NewRoom(RoomTreasure, WithTreasure(0)); !errors.IsInvalidArgument(err) {
		t.Errorf("empty chest error = %v, want invalid argument", err)
	}
	if _, err := NewRoom(RoomType("lava")); !errors.IsInvalidArgument(err) {
		t.Errorf("unknown type error = %v, want invalid argument", err)
	}

	room, err := NewRoom(RoomEmpty, WithTreasure(9), Visited())
	if err != nil {
		t.Fatalf("NewRoom failed: %v", err)
	}
	if room.Treasure != 0 || !room.Visited {
		t.Errorf("empty room = %+v, want no treasure and visited", room)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		room *Room
		want string
	}{
		{"empty", &Room{Type: RoomEmpty}, "The room is empty."},
		{"treasure", &Room{Type: RoomTreasure, Treasure: 17}, "You see a treasure chest containing 17 gold coins!"},
		{"monster", &Room{Type: RoomMonster, Monster: mustMonster(t, "Orc", 50, 10)}, "A wild Orc appears!"},
		{"exit", &Room{Type: RoomExit}, "This room contains the exit. Freedom is near!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.room.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTakeTreasureFlipsRoom(t *testing.T) {
	room, err := NewRoom(RoomTreasure, WithTreasure(12))
	if err != nil {
		t.Fatalf("NewRoom failed: %v", err)
	}
	if !room.HasTreasure() {
		t.Fatal("room should hold treasure")
	}

	if got := room.TakeTreasure(); got != 12 {
		t.Errorf("TakeTreasure() = %d, want 12", got)
	}
	if room.Type != RoomEmpty || room.HasTreasure() {
		t.Errorf("room after looting = %+v, want empty", room)
	}
	if got := room.TakeTreasure(); got != 0 {
		t.Errorf("second TakeTreasure() = %d, want 0", got)
	}
}

func TestClearMonsterFlipsRoom(t *testing.T) {
	room, err := NewRoom(RoomMonster, WithMonster(mustMonster(t, "Troll", 100, 20)))
	if err != nil {
		t.Fatalf("NewRoom failed: %v", err)
	}
	if !room.HasLiveMonster() {
		t.Fatal("room should hold a live monster")
	}

	room.ClearMonster()
	if room.Type != RoomEmpty || room.Monster != nil || room.HasLiveMonster() {
		t.Errorf("room after clearing = %+v, want empty", room)
	}
}

func TestRoomFromData(t *testing.T) {
	var data RoomData
	raw := `{"type":"monster","monster":{"name":"Orc","health":40},"visited":true}`
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	room, err := RoomFromData(data)
	if err != nil {
		t.Fatalf("RoomFromData failed: %v", err)
	}
	if room.Type != RoomMonster || !room.Visited {
		t.Errorf("room = %+v, want visited monster room", room)
	}
	if room.Monster.Name() != "Orc" || room.Monster.Health() != 40 || room.Monster.Damage() != 5 {
		t.Errorf("monster = %s %d/%d, want Orc 40/5",
			room.Monster.Name(), room.Monster.Health(), room.Monster.Damage())
	}
}

func TestRoomFromDataRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data RoomData
	}{
		{"missing type", RoomData{}},
		{"unknown type", RoomData{Type: "lava"}},
		{"monster room without monster", RoomData{Type: "monster"}},
		{"treasure room without amount", RoomData{Type: "treasure"}},
		{"treasure room with empty chest", RoomData{Type: "treasure", Treasure: new(int)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RoomFromData(tt.data); !errors.IsDataLoss(err) {
				t.Errorf("RoomFromData error = %v, want data loss", err)
			}
		})
	}
}

func TestRoomToDataOmitsStaleTreasure(t *testing.T) {
	room, err := NewRoom(RoomTreasure, WithTreasure(8))
	if err != nil {
		t.Fatalf("NewRoom failed: %v", err)
	}
	room.TakeTreasure()

	if data := room.ToData(); data.Treasure != nil || data.Type != "empty" {
		t.Errorf("ToData() = %+v, want empty room without treasure", data)
	}
}
