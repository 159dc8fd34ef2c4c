package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nhadat/marketplace/internal/shared/config"
	appLogger "github.com/nhadat/marketplace/internal/shared/logger"
)

// NewRedisClient connects and pings Redis. Callers treat an error as
// "run without Redis" when redis.enabled is false.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}

	appLogger.Info("redis connection established", "addr", cfg.GetAddr(), "db", cfg.DB)
	return client, nil
}
