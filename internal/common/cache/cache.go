package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService is a thin JSON read-through cache on top of Redis. A service
// constructed with a nil client is a no-op: every read misses and every write
// is discarded, so callers never need to branch on whether caching is enabled.
type CacheService struct {
	client *redis.Client
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{client: client}
}

func (c *CacheService) enabled() bool {
	return c != nil && c.client != nil
}

func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	if !c.enabled() {
		return redis.Nil
	}

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

func (c *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.enabled() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return c.client.Set(ctx, key, string(data), ttl).Err()
}

func (c *CacheService) Delete(ctx context.Context, keys ...string) error {
	if !c.enabled() || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// DeletePattern removes all keys matching a glob pattern.
func (c *CacheService) DeletePattern(ctx context.Context, pattern string) error {
	if !c.enabled() {
		return nil
	}

	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return c.client.Del(ctx, keys...).Err()
	}

	return nil
}

// GetOrSet returns the cached value for key, or invokes setter, stores the
// result and unmarshals it into dest.
func (c *CacheService) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, setter func() (interface{}, error)) error {
	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}

	value, err := setter()
	if err != nil {
		return err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// InvalidateDrawCache drops every cached view a draw mutation can stale:
// the draw itself, its entries and winners listings, and the draw lists
// (entry counts change on every submission).
func (c *CacheService) InvalidateDrawCache(ctx context.Context, drawID string) error {
	patterns := []string{
		fmt.Sprintf("draw:%s", drawID),
		fmt.Sprintf("draw_entries:%s", drawID),
		fmt.Sprintf("draw_winners:%s", drawID),
		"draws:*",
	}

	for _, pattern := range patterns {
		if err := c.DeletePattern(ctx, pattern); err != nil {
			return fmt.Errorf("failed to delete pattern %s: %w", pattern, err)
		}
	}

	return nil
}
