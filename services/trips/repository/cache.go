// Package repository provides the redis-backed trip search cache.
package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/viebus/viebus/internal/pkg/database"
	"github.com/viebus/viebus/internal/pkg/logger"
	"github.com/viebus/viebus/internal/pkg/models"
)

const searchTTL = 60 * time.Second

// RedisSearchCache caches serialized search results with a short TTL. Seat
// maps inside cached results go stale quickly, which is why individual trip
// fetches bypass the cache entirely.
type RedisSearchCache struct {
	redis *database.RedisClient
}

// NewRedisSearchCache creates a cache over an established redis connection.
func NewRedisSearchCache(redis *database.RedisClient) *RedisSearchCache {
	return &RedisSearchCache{redis: redis}
}

// GetTrips returns cached results for the key, or (nil, false) on miss or
// any redis failure.
func (c *RedisSearchCache) GetTrips(ctx context.Context, key string) ([]models.Trip, bool) {
	data, err := c.redis.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	var trips []models.Trip
	if err := json.Unmarshal([]byte(data), &trips); err != nil {
		logger.Debug("dropping corrupt cached search result",
			logger.String("key", key), logger.Err(err))
		_ = c.redis.Delete(ctx, key)
		return nil, false
	}
	return trips, true
}

// SetTrips stores results under the key. Failures are logged and ignored:
// the cache is an optimization, never a dependency.
func (c *RedisSearchCache) SetTrips(ctx context.Context, key string, trips []models.Trip) {
	data, err := json.Marshal(trips)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, searchTTL); err != nil {
		logger.Debug("failed to cache search result",
			logger.String("key", key), logger.Err(err))
	}
}
