// Package cache provides an optional redis-backed read-through cache for
// slow-changing reference data (league configuration, team tiers). Callers
// treat a nil *Cache as "caching disabled" and go straight to the store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the requested key is not in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// DefaultTTL applies when the configuration gives no TTL.
const DefaultTTL = 10 * time.Minute

// Key prefixes namespacing the cached aggregates.
const (
	PrefixLeague    = "league:"
	PrefixTeamTiers = "teamtiers:"
)

// Cache wraps a redis client with JSON serialization and TTL management.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to redis at addr and verifies the connection. ttl <= 0 falls
// back to DefaultTTL.
func New(ctx context.Context, addr string, ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// Close closes the underlying redis connection. Safe on a nil cache.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// Get retrieves and deserializes a value by key. Returns ErrCacheMiss when
// the key does not exist or the cache is disabled.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if c == nil {
		return ErrCacheMiss
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode cached value for %s: %w", key, err)
	}

	return nil
}

// Set serializes value to JSON and stores it under key with the configured
// TTL. A nil cache ignores the write.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for cache key %s: %w", key, err)
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Delete removes keys from the cache. A nil cache ignores the call.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// LeagueKey is the cache key for one league's configuration.
func LeagueKey(leagueID string) string {
	return PrefixLeague + leagueID
}

// TeamTiersKey is the cache key for the team difficulty tier map.
func TeamTiersKey() string {
	return PrefixTeamTiers + "all"
}
