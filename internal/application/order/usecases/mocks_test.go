package usecases

import (
	"context"

	"github.com/nhadat/marketplace/internal/application/order/dto"
	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type mockOrderRepository struct {
	CreateFunc            func(ctx context.Context, o *order.Order) error
	GetByIDFunc           func(ctx context.Context, id uint) (*order.Order, error)
	GetBySIDFunc          func(ctx context.Context, sid string) (*order.Order, error)
	ListByUserFunc        func(ctx context.Context, userID uint) ([]*order.Order, error)
	ListFunc              func(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error)
	MarkPaidIfPendingFunc func(ctx context.Context, id uint, markedBy uint) (bool, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return o.SetID(1)
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) GetBySID(ctx context.Context, sid string) (*order.Order, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) ListByUser(ctx context.Context, userID uint) ([]*order.Order, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockOrderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockOrderRepository) MarkPaidIfPending(ctx context.Context, id uint, markedBy uint) (bool, error) {
	if m.MarkPaidIfPendingFunc != nil {
		return m.MarkPaidIfPendingFunc(ctx, id, markedBy)
	}
	return true, nil
}

type mockPackageRepository struct {
	GetByIDFunc         func(ctx context.Context, id uint) (*order.Package, error)
	GetActiveBySlugFunc func(ctx context.Context, slug string) (*order.Package, error)
	ListActiveFunc      func(ctx context.Context) ([]*order.Package, error)
	UpsertFunc          func(ctx context.Context, pkg *order.Package) error
}

func (m *mockPackageRepository) GetByID(ctx context.Context, id uint) (*order.Package, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("Package not found")
}

func (m *mockPackageRepository) GetActiveBySlug(ctx context.Context, slug string) (*order.Package, error) {
	if m.GetActiveBySlugFunc != nil {
		return m.GetActiveBySlugFunc(ctx, slug)
	}
	return nil, errors.NewNotFoundError("Package not found")
}

func (m *mockPackageRepository) ListActive(ctx context.Context) ([]*order.Package, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockPackageRepository) Upsert(ctx context.Context, pkg *order.Package) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, pkg)
	}
	return nil
}

type mockUserRepository struct {
	GetByIDFunc  func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) UpdateIdentity(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockLedger struct {
	GrantCreditsFunc func(ctx context.Context, userID uint, amount int) error
}

func (m *mockLedger) ConsumeOneCredit(ctx context.Context, userID uint) (user.CreditSource, error) {
	return user.CreditSourceFree, nil
}

func (m *mockLedger) GrantCredits(ctx context.Context, userID uint, amount int) error {
	if m.GrantCreditsFunc != nil {
		return m.GrantCreditsFunc(ctx, userID, amount)
	}
	return nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memoryPackageCache struct {
	items       []*dto.PackageResponse
	set         bool
	invalidated int
}

func (c *memoryPackageCache) GetActive(ctx context.Context) ([]*dto.PackageResponse, bool, error) {
	return c.items, c.set, nil
}

func (c *memoryPackageCache) SetActive(ctx context.Context, packages []*dto.PackageResponse) error {
	c.items = packages
	c.set = true
	return nil
}

func (c *memoryPackageCache) Invalidate(ctx context.Context) error {
	c.items = nil
	c.set = false
	c.invalidated++
	return nil
}

func newTestLogger() logger.Interface {
	return logger.NewNopLogger()
}
