// Package cache stores recommendations in Redis keyed by payload digest.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/pathfinder/internal/types"
)

// KeyPrefix namespaces every cache key.
const KeyPrefix = "pathfinder:analysis:"

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Cache is a Redis-backed recommendation cache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Cache. The connection is established lazily; call Ping to check it.
func New(opts Options) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	return &Cache{client: rdb, ttl: opts.TTL}
}

// Ping tests the Redis connection
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Get returns the cached recommendation for digest. A miss is (nil, false, nil).
func (c *Cache) Get(ctx context.Context, digest string) (*types.Recommendation, bool, error) {
	raw, err := c.client.Get(ctx, KeyPrefix+digest).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get failed: %w", err)
	}

	var rec types.Recommendation
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false, fmt.Errorf("cache entry for %s is corrupt: %w", digest, err)
	}
	return &rec, true, nil
}

// Set stores a recommendation for digest with the configured TTL.
func (c *Cache) Set(ctx context.Context, digest string, rec *types.Recommendation) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode recommendation: %w", err)
	}
	if err := c.client.Set(ctx, KeyPrefix+digest, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}
	return nil
}

// Delete removes the entry for digest.
func (c *Cache) Delete(ctx context.Context, digest string) error {
	return c.client.Del(ctx, KeyPrefix+digest).Err()
}
