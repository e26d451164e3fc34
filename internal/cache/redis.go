package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type RedisCache struct {
	client *redis.Client
	prefix string
	log    *logrus.Entry
}

func NewRedisCache(addr, password string, db int) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{
		client: client,
		prefix: "apt:",
		log:    logrus.WithField("component", "redis_cache"),
	}, nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Error("cache set failed")
		return err
	}
	c.log.WithFields(logrus.Fields{
		"key":         key,
		"size_bytes":  len(value),
		"ttl":         ttl,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("cache set")
	return nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		c.log.WithField("key", key).Debug("cache miss")
		return nil, nil
	}
	if err != nil {
		c.log.WithError(err).WithField("key", key).Error("cache get failed")
		return nil, err
	}
	c.log.WithFields(logrus.Fields{"key": key, "size_bytes": len(val)}).Debug("cache hit")
	return val, nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}
