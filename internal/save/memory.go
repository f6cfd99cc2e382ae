package save

import (
	"context"
	"sync"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

// MemoryStore keeps the encoded snapshot in process. Loads decode a fresh
// copy, so nothing is shared with the saved game.
type MemoryStore struct {
	mu  sync.RWMutex
	raw []byte
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, s *Snapshot) error {
	raw, err := Encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = raw
	return nil
}

func (m *MemoryStore) Load(_ context.Context) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.raw == nil {
		return nil, errors.NotFound("no save in memory")
	}
	return Decode(m.raw)
}

func (m *MemoryStore) Exists(_ context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.raw != nil, nil
}

func (m *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
