package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
)

const keyPrefix = "logistics:"

// Memcached keeps detail reads in a shared memcached pool so every
// instance sees the same invalidations.
type Memcached struct {
	client *memcache.Client
	ttl    time.Duration
}

func NewMemcached(client *memcache.Client, ttl time.Duration) *Memcached {
	return &Memcached{client: client, ttl: ttl}
}

func (m *Memcached) Get(ctx context.Context, key string, dst any) (bool, error) {
	item, err := m.client.Get(keyPrefix + key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "memcached get")
	}
	if err := json.Unmarshal(item.Value, dst); err != nil {
		return false, errors.Wrap(err, "decode cached value")
	}
	return true, nil
}

func (m *Memcached) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "encode cached value")
	}
	return m.client.Set(&memcache.Item{
		Key:        keyPrefix + key,
		Value:      b,
		Expiration: int32(m.ttl / time.Second),
	})
}

func (m *Memcached) Delete(ctx context.Context, key string) error {
	err := m.client.Delete(keyPrefix + key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil
	}
	return err
}
