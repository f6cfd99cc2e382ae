package save

import (
	"context"
)

//go:generate mockgen -destination=mock/mock.go -package=savemock github.com/samdwyer/dungeoncrawl/internal/save Store

// Store persists a single game snapshot. Load returns a NotFound error when
// nothing has been saved yet.
type Store interface {
	Save(ctx context.Context, s *Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
	Exists(ctx context.Context) (bool, error)
	Close() error
}

// DefaultSlot names the snapshot kept by keyed backends.
const DefaultSlot = "default"
