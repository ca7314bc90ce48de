package catalog

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "catalog:listings:"

// Cache is a Redis cache for raw upstream listing payloads, keyed per
// service type. A nil client disables caching; cache failures degrade to a
// direct upstream fetch and are never fatal.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache creates a listings cache
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get returns the cached listings payload for a service type
func (c *Cache) Get(ctx context.Context, serviceType string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, cacheKeyPrefix+serviceType).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("service_type", serviceType).Msg("Listings cache read failed")
		}
		return nil, false
	}
	return data, true
}

// Set stores the listings payload for a service type
func (c *Cache) Set(ctx context.Context, serviceType string, data []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKeyPrefix+serviceType, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("service_type", serviceType).Msg("Listings cache write failed")
	}
}

// Invalidate drops the cached payload for a service type
func (c *Cache) Invalidate(ctx context.Context, serviceType string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, cacheKeyPrefix+serviceType).Err(); err != nil {
		log.Warn().Err(err).Str("service_type", serviceType).Msg("Listings cache invalidation failed")
	}
}
