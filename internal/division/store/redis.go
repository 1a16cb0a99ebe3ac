package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"idcheck/internal/division"
)

const cacheKeyPrefix = "idcheck:division:"

// RedisCache is a read-through cache in front of another registry. Division
// data changes only when a new GB/T 2260 revision is loaded, so hits are
// served from Redis until the TTL turns them over.
type RedisCache struct {
	inner  division.Registry
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(inner division.Registry, client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{inner: inner, client: client, ttl: ttl}
}

// Lookup implements division.Registry. Cache failures fall through to the
// inner registry; only the inner lookup's error is authoritative.
func (c *RedisCache) Lookup(ctx context.Context, code string) (division.Division, bool, error) {
	key := cacheKeyPrefix + code

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var d division.Division
		if json.Unmarshal(raw, &d) == nil {
			return d, true, nil
		}
		// Corrupt entry: drop it and fall through.
		c.client.Del(ctx, key)
	}
	// Miss, corrupt entry, or Redis down: resolve from the inner registry.
	// A cache outage must not take division resolution with it.

	d, ok, err := c.inner.Lookup(ctx, code)
	if err != nil || !ok {
		return division.Division{}, ok, err
	}

	if raw, err := json.Marshal(d); err == nil {
		c.client.Set(ctx, key, raw, c.ttl)
	}
	return d, true, nil
}

// Invalidate removes cached entries for the given codes, used after an admin
// registry reload.
func (c *RedisCache) Invalidate(ctx context.Context, codes ...string) error {
	if len(codes) == 0 {
		return nil
	}
	keys := make([]string, len(codes))
	for i, code := range codes {
		keys[i] = cacheKeyPrefix + code
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate division cache: %w", err)
	}
	return nil
}
