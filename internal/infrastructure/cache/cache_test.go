package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhadat/marketplace/internal/application/order/dto"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStateStore_OneShot(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisStateStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "state-1", "verifier-1", time.Minute))

	verifier, err := store.Consume(ctx, "state-1")
	require.NoError(t, err)
	assert.Equal(t, "verifier-1", verifier)

	_, err = store.Consume(ctx, "state-1")
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestRedisStateStore_Expires(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisStateStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "state-2", "verifier-2", 10*time.Minute))
	mr.FastForward(11 * time.Minute)

	_, err := store.Consume(ctx, "state-2")
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestRedisStateStore_Validation(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisStateStore(client)

	assert.Error(t, store.Save(context.Background(), "", "v", time.Minute))
	_, err := store.Consume(context.Background(), "")
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestRedisPackageCache(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisPackageCache(client)
	ctx := context.Background()

	_, ok, err := c.GetActive(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	packages := []*dto.PackageResponse{
		{ID: "pkg_1", Name: "Starter 3 tin", Slug: "starter-3", Price: 199000, ListingCredits: 3},
		{ID: "pkg_2", Name: "Pro 5 tin", Slug: "pro-5", Price: 299000, ListingCredits: 5},
	}
	require.NoError(t, c.SetActive(ctx, packages))
	assert.True(t, mr.Exists(activePackagesKey))

	got, ok, err := c.GetActive(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "pro-5", got[1].Slug)
	assert.Equal(t, 5, got[1].ListingCredits)

	require.NoError(t, c.Invalidate(ctx))
	_, ok, err = c.GetActive(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisPackageCache_CorruptEntry(t *testing.T) {
	mr, client := setupTestRedis(t)
	require.NoError(t, mr.Set(activePackagesKey, "{not json"))

	_, ok, err := NewRedisPackageCache(client).GetActive(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}
