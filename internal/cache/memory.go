package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bluele/gcache"
)

// MemoryCache is an in-process LRU used when no Redis is configured.
type MemoryCache struct {
	lru gcache.Cache
}

func NewMemoryCache(size int, defaultTTL time.Duration) *MemoryCache {
	return newMemoryCache(size, defaultTTL, gcache.NewRealClock())
}

func newMemoryCache(size int, defaultTTL time.Duration, clock gcache.Clock) *MemoryCache {
	if size <= 0 {
		size = 512
	}
	b := gcache.New(size).LRU().Clock(clock)
	if defaultTTL > 0 {
		b = b.Expiration(defaultTTL)
	}
	return &MemoryCache{lru: b.Build()}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	v, err := c.lru.Get(key)
	if errors.Is(err, gcache.KeyNotFoundError) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl > 0 {
		return c.lru.SetWithExpire(key, value, ttl)
	}
	return c.lru.Set(key, value)
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

func (c *MemoryCache) Close() error {
	c.lru.Purge()
	return nil
}
