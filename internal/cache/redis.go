package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/rxtech-lab/chain-directory/internal/metrics"
)

// Compile-time check
var _ Cache = (*RedisCache)(nil)

// RedisCache is a cache region stored in Redis, for deployments with more
// than one API replica. Keys are namespaced by region name. Backend errors
// degrade to cache misses so Redis outages never fail a request.
type RedisCache struct {
	name   string
	client *redis.Client
	logger *zap.Logger
}

func NewRedisCache(name string, client *redis.Client, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		name:   name,
		client: client,
		logger: logger.Named("RedisCache"),
	}
}

func (c *RedisCache) Name() string {
	return c.name
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	body, err := c.client.Get(ctx, c.prefixed(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Redis cache read failed",
				zap.String("region", c.name),
				zap.String("key", key),
				zap.Error(err),
			)
			metrics.RecordCacheOperation(c.name, "error")
			return nil, false
		}
		c.logger.Debug("Redis cache miss", zap.String("region", c.name), zap.String("key", key))
		metrics.RecordCacheOperation(c.name, "miss")
		return nil, false
	}
	c.logger.Debug("Redis cache hit", zap.String("region", c.name), zap.String("key", key))
	metrics.RecordCacheOperation(c.name, "hit")
	return body, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, c.prefixed(key), value, ttl).Err(); err != nil {
		c.logger.Warn("Redis cache write failed",
			zap.String("region", c.name),
			zap.String("key", key),
			zap.Error(err),
		)
		metrics.RecordCacheOperation(c.name, "error")
		return
	}
	c.logger.Debug("Redis cache set",
		zap.String("region", c.name),
		zap.String("key", key),
		zap.Duration("ttl", ttl),
	)
	metrics.RecordCacheOperation(c.name, "set")
}

func (c *RedisCache) prefixed(key string) string {
	return c.name + ":" + key
}
