package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nhadat/marketplace/internal/application/order/dto"
)

const (
	activePackagesKey = "marketplace:packages:active"
	packageCacheTTL   = time.Hour
)

// RedisPackageCache caches the public package catalog. The catalog only
// changes through the seed command, which invalidates it.
type RedisPackageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPackageCache(client *redis.Client) *RedisPackageCache {
	return &RedisPackageCache{client: client, ttl: packageCacheTTL}
}

func (c *RedisPackageCache) GetActive(ctx context.Context) ([]*dto.PackageResponse, bool, error) {
	data, err := c.client.Get(ctx, activePackagesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read package cache: %w", err)
	}

	var out []*dto.PackageResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false, fmt.Errorf("failed to decode package cache: %w", err)
	}
	return out, true, nil
}

func (c *RedisPackageCache) SetActive(ctx context.Context, packages []*dto.PackageResponse) error {
	data, err := json.Marshal(packages)
	if err != nil {
		return fmt.Errorf("failed to encode package cache: %w", err)
	}
	if err := c.client.Set(ctx, activePackagesKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write package cache: %w", err)
	}
	return nil
}

func (c *RedisPackageCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, activePackagesKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate package cache: %w", err)
	}
	return nil
}
