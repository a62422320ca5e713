package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/softcare/softcare-backend/internal/database"
)

const (
	// CacheKeyPrefix is the Redis key prefix for cached data
	CacheKeyPrefix = "softcare:cache:"
	// DefaultCacheTTL suits the support channel directory, which changes rarely
	DefaultCacheTTL = 10 * time.Minute
	// MinCacheTTL is the lower clamp for custom TTLs
	MinCacheTTL = time.Minute
	// MaxCacheTTL is the upper clamp for custom TTLs
	MaxCacheTTL = time.Hour
)

// CacheService caches read-heavy data in Redis. Every method degrades to a
// no-op or cache miss when Redis is not connected, so callers never branch
// on availability.
type CacheService struct{}

// Get retrieves a value from cache into dest. False means cache miss.
func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if database.RedisClient == nil {
		return false, nil
	}

	val, err := database.RedisClient.Get(ctx, CacheKeyPrefix+key).Result()
	if err != nil {
		return false, nil // miss or Redis down, treat the same
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a value in cache with the default TTL.
func (c *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return c.SetWithTTL(ctx, key, value, DefaultCacheTTL)
}

// SetWithTTL stores a value with a custom TTL, clamped to the allowed range.
func (c *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if database.RedisClient == nil {
		return nil
	}

	if ttl < MinCacheTTL {
		ttl = MinCacheTTL
	}
	if ttl > MaxCacheTTL {
		ttl = MaxCacheTTL
	}

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return database.RedisClient.Set(ctx, CacheKeyPrefix+key, jsonData, ttl).Err()
}

// Delete removes a cached value. Used to invalidate after writes.
func (c *CacheService) Delete(ctx context.Context, key string) error {
	if database.RedisClient == nil {
		return nil
	}
	return database.RedisClient.Del(ctx, CacheKeyPrefix+key).Err()
}

// CacheKey generates a cache key for a specific resource
func CacheKey(resource string, identifier string) string {
	return fmt.Sprintf("%s:%s", resource, identifier)
}

// Global cache service instance
var Cache = &CacheService{}
