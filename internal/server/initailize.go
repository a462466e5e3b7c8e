package server

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rxtech-lab/chain-directory/internal/cache"
	"github.com/rxtech-lab/chain-directory/internal/config"
	"github.com/rxtech-lab/chain-directory/internal/services"
)

func InitializeServices(db *gorm.DB) (services.ChainService, services.GasPriceService, services.WalletService, services.FeatureService, services.SafeAppService) {
	chainService := services.NewChainService(db)
	gasPriceService := services.NewGasPriceService(db)
	walletService := services.NewWalletService(db)
	featureService := services.NewFeatureService(db)
	safeAppService := services.NewSafeAppService(db)

	return chainService, gasPriceService, walletService, featureService, safeAppService
}

// OpenDatabase connects to the configured storage backend and runs
// migrations.
func OpenDatabase(cfg config.DatabaseConfig) (services.DBService, error) {
	switch cfg.Driver {
	case "sqlite":
		return services.NewSqliteDBService(cfg.DSN)
	case "postgres":
		return services.NewPostgresDBService(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// InitializeSafeAppsCache builds the response cache region for safe app
// listings. The redis backend fails fast when the server is unreachable at
// startup; once running, backend errors degrade to cache misses.
func InitializeSafeAppsCache(cfg config.CacheConfig, logger *zap.Logger) (cache.Cache, error) {
	switch cfg.Backend {
	case "memory":
		return cache.NewMemoryCache(cache.SafeAppsRegion, cfg.SafeAppsTTL, cfg.CleanupInterval, logger), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return cache.NewRedisCache(cache.SafeAppsRegion, client, logger), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
}
