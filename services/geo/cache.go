package geo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

const cacheKeyPrefix = "geocode:"

// kvStore is the subset of the Redis client the cache tier needs.
type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// CacheStrategy serves previously geocoded names from Redis. Cache errors
// and misses are both reported as not-found; the next tier takes over.
type CacheStrategy struct {
	store kvStore
	ttl   time.Duration
}

// NewCacheStrategy creates the cache tier
func NewCacheStrategy(store kvStore, ttl time.Duration) *CacheStrategy {
	return &CacheStrategy{store: store, ttl: ttl}
}

// Name returns the tier name used in metrics
func (s *CacheStrategy) Name() string { return "cache" }

// Resolve returns a cached coordinate pair if one exists
func (s *CacheStrategy) Resolve(ctx context.Context, name string) (*models.GeoPoint, bool) {
	raw, err := s.store.Get(ctx, cacheKeyPrefix+NormalizeName(name))
	if err != nil {
		return nil, false
	}

	var point models.GeoPoint
	if err := json.Unmarshal([]byte(raw), &point); err != nil {
		logger.Warn("Discarding malformed geocode cache entry",
			logger.String("name", name),
			logger.Err(err))
		return nil, false
	}

	return &point, true
}

// Store writes a resolved coordinate back to the cache, best-effort
func (s *CacheStrategy) Store(ctx context.Context, name string, point *models.GeoPoint) {
	data, err := json.Marshal(point)
	if err != nil {
		return
	}

	if err := s.store.Set(ctx, cacheKeyPrefix+NormalizeName(name), string(data), s.ttl); err != nil {
		logger.Warn("Failed to cache geocode result",
			logger.String("name", name),
			logger.Err(err))
	}
}
