package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLimiter_FixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	current := time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC)
	limiter := NewRedisLimiter(client, "api", 3, time.Minute)
	limiter.now = func() time.Time { return current }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d", i+1)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 1, 0, 0, time.UTC), res.ResetAt)

	other, err := limiter.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	current = current.Add(time.Minute)
	res, err = limiter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestLocalLimiter_Burst(t *testing.T) {
	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewLocalLimiter(60, 2)
	limiter.now = func() time.Time { return current }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, _ := limiter.Allow(ctx, "user:1")
		assert.True(t, res.Allowed)
	}
	res, _ := limiter.Allow(ctx, "user:1")
	assert.False(t, res.Allowed)

	res, _ = limiter.Allow(ctx, "user:2")
	assert.True(t, res.Allowed)

	current = current.Add(time.Second)
	res, _ = limiter.Allow(ctx, "user:1")
	assert.True(t, res.Allowed)
}

func TestLocalLimiter_SweepsIdleBuckets(t *testing.T) {
	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewLocalLimiter(60, 1)
	limiter.now = func() time.Time { return current }

	_, _ = limiter.Allow(context.Background(), "user:1")
	current = current.Add(time.Hour)
	_, _ = limiter.Allow(context.Background(), "user:2")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.buckets, "user:1")
	assert.Contains(t, limiter.buckets, "user:2")
}
