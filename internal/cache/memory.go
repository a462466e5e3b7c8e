package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/rxtech-lab/chain-directory/internal/metrics"
)

// Compile-time check
var _ Cache = (*MemoryCache)(nil)

// MemoryCache is an in-process cache region backed by go-cache.
type MemoryCache struct {
	name   string
	cache  *gocache.Cache
	logger *zap.Logger
}

// NewMemoryCache creates a region with the given default TTL and cleanup
// interval.
func NewMemoryCache(name string, defaultTTL, cleanupInterval time.Duration, logger *zap.Logger) *MemoryCache {
	c := gocache.New(defaultTTL, cleanupInterval)
	logger.Info("Initialized in-memory cache region",
		zap.String("region", name),
		zap.Duration("defaultTTL", defaultTTL),
		zap.Duration("cleanupInterval", cleanupInterval),
	)
	return &MemoryCache{
		name:   name,
		cache:  c,
		logger: logger.Named("MemoryCache"),
	}
}

func (c *MemoryCache) Name() string {
	return c.name
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	if x, found := c.cache.Get(key); found {
		if body, ok := x.([]byte); ok {
			c.logger.Debug("Memory cache hit", zap.String("region", c.name), zap.String("key", key))
			metrics.RecordCacheOperation(c.name, "hit")
			return body, true
		}
		c.logger.Warn("Memory cache data type mismatch for key",
			zap.String("region", c.name),
			zap.String("key", key),
			zap.Any("type", fmt.Sprintf("%T", x)),
		)
	}
	c.logger.Debug("Memory cache miss", zap.String("region", c.name), zap.String("key", key))
	metrics.RecordCacheOperation(c.name, "miss")
	return nil, false
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, value, ttl)
	c.logger.Debug("Memory cache set",
		zap.String("region", c.name),
		zap.String("key", key),
		zap.Duration("ttl", ttl),
	)
	metrics.RecordCacheOperation(c.name, "set")
}
