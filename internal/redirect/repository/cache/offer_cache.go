// Package cache puts a Redis read-through cache in front of offer lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-affiliate/internal/redirect/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	offerCachePrefix = "offer:"
	offerCacheTTL    = 5 * time.Minute
)

// OfferCache defines the interface for offer caching operations.
// Implementations handle misses and failures by returning nil, nil.
type OfferCache interface {
	// Get returns nil, nil when the offer is not cached.
	Get(ctx context.Context, id string) (*domain.Offer, error)

	// Set stores an offer in the cache.
	Set(ctx context.Context, offer *domain.Offer) error

	// Invalidate removes an offer from the cache.
	Invalidate(ctx context.Context, id string) error
}

// Compile-time interface checks
var (
	_ OfferCache = (*RedisOfferCache)(nil)
	_ OfferCache = (*noopOfferCache)(nil)
)

// RedisOfferCache implements OfferCache using Redis.
type RedisOfferCache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisOfferCache creates a Redis-backed offer cache.
// Returns a no-op cache if the Redis client is nil.
func NewRedisOfferCache(rdb redis.Cmdable, logger *zap.Logger) OfferCache {
	if rdb == nil {
		return &noopOfferCache{}
	}
	return &RedisOfferCache{
		rdb:    rdb,
		ttl:    offerCacheTTL,
		logger: logger,
	}
}

func cacheKey(id string) string {
	return offerCachePrefix + id
}

// Get retrieves an offer from Redis.
func (c *RedisOfferCache) Get(ctx context.Context, id string) (*domain.Offer, error) {
	data, err := c.rdb.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("failed to get offer from cache", zap.String("offer_id", id), zap.Error(err))
		}
		return nil, nil
	}

	var offer domain.Offer
	if err := json.Unmarshal(data, &offer); err != nil {
		c.logger.Warn("failed to unmarshal cached offer", zap.String("offer_id", id), zap.Error(err))
		return nil, nil
	}
	return &offer, nil
}

// Set stores an offer in Redis. Failures are logged, never returned.
func (c *RedisOfferCache) Set(ctx context.Context, offer *domain.Offer) error {
	data, err := json.Marshal(offer)
	if err != nil {
		c.logger.Warn("failed to marshal offer for cache", zap.String("offer_id", offer.ID), zap.Error(err))
		return nil
	}

	if err := c.rdb.Set(ctx, cacheKey(offer.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache offer", zap.String("offer_id", offer.ID), zap.Error(err))
	}
	return nil
}

// Invalidate removes an offer from Redis.
func (c *RedisOfferCache) Invalidate(ctx context.Context, id string) error {
	if err := c.rdb.Del(ctx, cacheKey(id)).Err(); err != nil {
		c.logger.Warn("failed to invalidate offer cache", zap.String("offer_id", id), zap.Error(err))
	}
	return nil
}

// noopOfferCache is used when Redis is not configured.
type noopOfferCache struct{}

func (c *noopOfferCache) Get(context.Context, string) (*domain.Offer, error) {
	return nil, nil
}

func (c *noopOfferCache) Set(context.Context, *domain.Offer) error {
	return nil
}

func (c *noopOfferCache) Invalidate(context.Context, string) error {
	return nil
}
