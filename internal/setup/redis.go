package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/config"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/cache"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func InitRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("Connected to Redis successfully!", zap.String("addr", cfg.Addr))
	return client, nil
}

// InitCache redis.addr 为空时使用进程内缓存, 仅适合单实例开发环境
func InitCache(ctx context.Context, cfg *config.Config) (cache.Cache, *redis.Client, error) {
	if cfg.Redis.Addr == "" {
		logger.Warn("redis.addr is empty, sessions and role cache are kept in memory")
		return cache.NewMemoryCache(cfg.JWT.ExpiresIn, cfg.Redis.RoleTTL), nil, nil
	}
	client, err := InitRedis(ctx, &cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisCache(client), client, nil
}

func CloseRedis(client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	} else {
		logger.Info("Redis connection closed.")
	}
}
