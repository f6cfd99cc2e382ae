package save

import (
	"context"
	stderrors "errors"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/redis"
)

const keyPrefix = "dungeoncrawl:save:"

// RedisStore keeps snapshots as JSON strings under one key per slot.
type RedisStore struct {
	client redis.Client
	slot   string
}

// NewRedisStore creates a store on an existing client.
func NewRedisStore(client redis.Client, slot string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}
	if slot == "" {
		slot = DefaultSlot
	}
	return &RedisStore{client: client, slot: slot}, nil
}

func (r *RedisStore) key() string {
	return keyPrefix + r.slot
}

// Save writes the snapshot without expiry.
func (r *RedisStore) Save(ctx context.Context, s *Snapshot) error {
	raw, err := Encode(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(), raw, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to save slot %s", r.slot)
	}
	return nil
}

// Load reads the snapshot for the slot.
func (r *RedisStore) Load(ctx context.Context) (*Snapshot, error) {
	raw, err := r.client.Get(ctx, r.key()).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, errors.NotFoundf("no save in slot %s", r.slot)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load slot %s", r.slot)
	}
	return Decode(raw)
}

// Exists reports whether the slot key is set.
func (r *RedisStore) Exists(ctx context.Context) (bool, error) {
	n, err := r.client.Exists(ctx, r.key()).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to check slot %s", r.slot)
	}
	return n > 0, nil
}

// Close closes the underlying client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

var _ Store = (*RedisStore)(nil)
