package usecases

import (
	"context"
	"time"

	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type mockPropertyRepository struct {
	CreateFunc      func(ctx context.Context, p *property.Property) error
	GetByIDFunc     func(ctx context.Context, id uint) (*property.Property, error)
	GetBySIDFunc    func(ctx context.Context, sid string) (*property.Property, error)
	UpdateFunc      func(ctx context.Context, p *property.Property) error
	DeleteFunc      func(ctx context.Context, id uint) error
	ListFunc        func(ctx context.Context, filter property.ListFilter) ([]*property.Property, int64, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uint) ([]*property.Property, error)
	CountFunc       func(ctx context.Context, status *vo.PropertyStatus) (int64, error)
}

func (m *mockPropertyRepository) Create(ctx context.Context, p *property.Property) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockPropertyRepository) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("property not found")
}

func (m *mockPropertyRepository) GetBySID(ctx context.Context, sid string) (*property.Property, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, errors.NewNotFoundError("property not found")
}

func (m *mockPropertyRepository) Update(ctx context.Context, p *property.Property) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPropertyRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPropertyRepository) List(ctx context.Context, filter property.ListFilter) ([]*property.Property, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockPropertyRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*property.Property, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPropertyRepository) Count(ctx context.Context, status *vo.PropertyStatus) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, status)
	}
	return 0, nil
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
	ConsumeOneCreditFunc func(ctx context.Context, userID uint) (user.CreditSource, error)
	GrantCreditsFunc     func(ctx context.Context, userID uint, amount int) error
}

func (m *mockLedger) ConsumeOneCredit(ctx context.Context, userID uint) (user.CreditSource, error) {
	if m.ConsumeOneCreditFunc != nil {
		return m.ConsumeOneCreditFunc(ctx, userID)
	}
	return user.CreditSourceFree, nil
}

func (m *mockLedger) GrantCredits(ctx context.Context, userID uint, amount int) error {
	if m.GrantCreditsFunc != nil {
		return m.GrantCreditsFunc(ctx, userID, amount)
	}
	return nil
}

// passthroughTx runs fn directly; it records whether a transaction was requested.
type passthroughTx struct {
	calls int
}

func (tx *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type mockNotifier struct {
	sent chan ModerationNotice
	err  error
}

func newMockNotifier(err error) *mockNotifier {
	return &mockNotifier{sent: make(chan ModerationNotice, 1), err: err}
}

func (m *mockNotifier) NotifyModeration(ctx context.Context, notice ModerationNotice) error {
	m.sent <- notice
	return m.err
}

func (m *mockNotifier) wait() (ModerationNotice, bool) {
	select {
	case n := <-m.sent:
		return n, true
	case <-time.After(2 * time.Second):
		return ModerationNotice{}, false
	}
}

type stubRenderer struct{}

func (stubRenderer) Render(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

func newTestLogger() logger.Interface {
	return logger.NewNopLogger()
}

type recordingRemover struct {
	removed []string
}

func (r *recordingRemover) Remove(url string) error {
	r.removed = append(r.removed, url)
	return nil
}
