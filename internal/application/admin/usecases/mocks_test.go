package usecases

import (
	"context"

	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type mockUserRepository struct {
	GetBySIDFunc func(ctx context.Context, sid string) (*user.User, error)
	UpdateFunc   func(ctx context.Context, u *user.User) error
	ListFunc     func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) UpdateIdentity(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockPropertyRepository struct {
	CountFunc func(ctx context.Context, status *vo.PropertyStatus) (int64, error)
}

func (m *mockPropertyRepository) Create(ctx context.Context, p *property.Property) error { return nil }

func (m *mockPropertyRepository) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	return nil, errors.NewNotFoundError("property not found")
}

func (m *mockPropertyRepository) GetBySID(ctx context.Context, sid string) (*property.Property, error) {
	return nil, errors.NewNotFoundError("property not found")
}

func (m *mockPropertyRepository) Update(ctx context.Context, p *property.Property) error { return nil }

func (m *mockPropertyRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockPropertyRepository) List(ctx context.Context, filter property.ListFilter) ([]*property.Property, int64, error) {
	return nil, 0, nil
}

func (m *mockPropertyRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*property.Property, error) {
	return nil, nil
}

func (m *mockPropertyRepository) Count(ctx context.Context, status *vo.PropertyStatus) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, status)
	}
	return 0, nil
}

func newTestLogger() logger.Interface {
	return logger.NewNopLogger()
}
