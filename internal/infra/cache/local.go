package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// Local is an in-process cache used when no memcached servers are
// configured. Values are stored encoded so callers never share memory
// with the cache.
type Local struct {
	cache *gocache.Cache
}

func NewLocal(ttl time.Duration) *Local {
	return &Local{cache: gocache.New(ttl, 2*ttl)}
}

func (l *Local) Get(ctx context.Context, key string, dst any) (bool, error) {
	cached, found := l.cache.Get(key)
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(cached.([]byte), dst); err != nil {
		return false, errors.Wrap(err, "decode cached value")
	}
	return true, nil
}

func (l *Local) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "encode cached value")
	}
	l.cache.Set(key, b, gocache.DefaultExpiration)
	return nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	l.cache.Delete(key)
	return nil
}
