package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when the requested key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache stores JSON-encoded dashboard snapshots in Redis under TTL keys.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func New(redisClient *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Set marshals v and stores it under the namespaced key with the
// configured TTL.
func (c *Cache) Set(ctx context.Context, key string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}

	if err := c.redis.Set(ctx, c.key(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store cache value: %w", err)
	}

	return nil
}

// Get unmarshals the cached value into v, or returns ErrMiss.
func (c *Cache) Get(ctx context.Context, key string, v interface{}) error {
	payload, err := c.redis.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("failed to read cache value: %w", err)
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("failed to decode cache value: %w", err)
	}

	return nil
}

// Invalidate drops a key, e.g. after a write that changes the snapshot.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if err := c.redis.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache key: %w", err)
	}
	return nil
}

func (c *Cache) key(key string) string {
	return "samikna:cache:" + key
}
