package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/shared/errors"
)

func createTestPackage(t *testing.T, repo *PackageRepository, slug string, price int64, credits int) *order.Package {
	t.Helper()
	pkg, err := order.NewPackage("Gói "+slug, slug, price, credits, "")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(context.Background(), pkg))
	stored, err := repo.GetActiveBySlug(context.Background(), slug)
	require.NoError(t, err)
	return stored
}

func TestPackageRepository_UpsertBySlug(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPackageRepository(gdb)
	ctx := context.Background()

	first := createTestPackage(t, repo, "pro-5", 299000, 5)
	createTestPackage(t, repo, "starter-3", 199000, 3)

	updated, err := order.NewPackage("Pro 5 tin", "pro-5", 349000, 5, "giá mới")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.GetActiveBySlug(ctx, "pro-5")
	require.NoError(t, err)
	assert.Equal(t, first.ID(), got.ID())
	assert.Equal(t, first.SID(), got.SID())
	assert.Equal(t, int64(349000), got.Price())

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "starter-3", list[0].Slug())

	_, err = repo.GetActiveBySlug(ctx, "vip")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestOrderRepository_MarkPaidIfPending(t *testing.T) {
	gdb := setupTestDB(t)
	packages := NewPackageRepository(gdb)
	orders := NewOrderRepository(gdb)
	ctx := context.Background()

	pkg := createTestPackage(t, packages, "pro-5", 299000, 5)
	o, err := order.NewOrder(7, pkg)
	require.NoError(t, err)
	require.NoError(t, orders.Create(ctx, o))

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := orders.MarkPaidIfPending(ctx, o.ID(), 1)
			if err == nil && ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)

	stored, err := orders.GetBySID(ctx, o.SID())
	require.NoError(t, err)
	assert.True(t, stored.IsPaid())
	require.NotNil(t, stored.MarkedBy())
	assert.Equal(t, uint(1), *stored.MarkedBy())
	assert.Equal(t, int64(299000), stored.Amount())
}

func TestOrderRepository_Lists(t *testing.T) {
	gdb := setupTestDB(t)
	packages := NewPackageRepository(gdb)
	orders := NewOrderRepository(gdb)
	ctx := context.Background()

	pkg := createTestPackage(t, packages, "starter-3", 199000, 3)
	for _, userID := range []uint{1, 1, 2} {
		o, err := order.NewOrder(userID, pkg)
		require.NoError(t, err)
		require.NoError(t, orders.Create(ctx, o))
	}

	mine, err := orders.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	ok, err := orders.MarkPaidIfPending(ctx, mine[0].ID(), 9)
	require.NoError(t, err)
	require.True(t, ok)

	pending, total, err := orders.List(ctx, order.ListFilter{Status: order.StatusPending, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, pending, 2)
}
