package save_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/roll"
	"github.com/samdwyer/dungeoncrawl/internal/save"
	"github.com/samdwyer/dungeoncrawl/internal/testutils"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// StoreTestSuite runs the same contract against every backend.
type StoreTestSuite struct {
	suite.Suite
	newStore func() save.Store
	store    save.Store
	ctx      context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func (s *StoreTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *StoreTestSuite) snapshot(seed int64) *save.Snapshot {
	dungeon, err := world.Generate(s.ctx, 4, 3, 2, roll.NewSeeded(seed))
	s.Require().NoError(err)

	player, err := entity.NewPlayer("Ada", 80)
	s.Require().NoError(err)
	player.Move(entity.NewPosition(2, 1))
	player.AddTreasure(int(seed))

	return save.NewSnapshot(player, dungeon, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
}

func (s *StoreTestSuite) TestLoadBeforeSave() {
	exists, err := s.store.Exists(s.ctx)
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.store.Load(s.ctx)
	s.True(errors.IsNotFound(err), "got %v", err)
}

func (s *StoreTestSuite) TestSaveThenLoad() {
	snap := s.snapshot(11)
	s.Require().NoError(s.store.Save(s.ctx, snap))

	exists, err := s.store.Exists(s.ctx)
	s.Require().NoError(err)
	s.True(exists)

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(snap, loaded)
	s.Equal("2026-03-01T12:00:00Z", loaded.SavedAt)

	player, dungeon, err := loaded.Restore()
	s.Require().NoError(err)
	s.Equal("Ada", player.Name())
	s.Equal(11, player.Score())
	s.Equal(entity.NewPosition(2, 1), player.Position())
	s.Equal(12, dungeon.RoomCount())
}

func (s *StoreTestSuite) TestSaveOverwrites() {
	s.Require().NoError(s.store.Save(s.ctx, s.snapshot(3)))
	s.Require().NoError(s.store.Save(s.ctx, s.snapshot(9)))

	loaded, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(9, loaded.Player.Score)
}

func TestFileStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func() save.Store {
		store, err := save.NewFileStore(filepath.Join(t.TempDir(), "nested", "save.json"))
		if err != nil {
			t.Fatal(err)
		}
		return store
	}})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func() save.Store {
		store, err := save.OpenSQLite(filepath.Join(t.TempDir(), "saves.db"), "slot-a")
		if err != nil {
			t.Fatal(err)
		}
		return store
	}})
}

func TestRedisStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func() save.Store {
		client, _ := testutils.CreateTestRedisClient(t)
		store, err := save.NewRedisStore(client, "")
		if err != nil {
			t.Fatal(err)
		}
		return store
	}})
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func() save.Store {
		return save.NewMemoryStore()
	}})
}
