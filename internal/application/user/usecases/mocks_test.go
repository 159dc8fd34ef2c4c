package usecases

import (
	"context"
	"time"

	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, u *user.User) error
	GetByIDFunc        func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc       func(ctx context.Context, ids []uint) ([]*user.User, error)
	GetBySIDFunc       func(ctx context.Context, sid string) (*user.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc         func(ctx context.Context, u *user.User) error
	UpdateIdentityFunc func(ctx context.Context, u *user.User) error
	ListFunc           func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

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
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) UpdateIdentity(ctx context.Context, u *user.User) error {
	if m.UpdateIdentityFunc != nil {
		return m.UpdateIdentityFunc(ctx, u)
	}
	return nil
}

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

type mockVerifier struct {
	VerifyIDTokenFunc func(ctx context.Context, idToken string) (*OAuthUserInfo, error)
}

func (m *mockVerifier) VerifyIDToken(ctx context.Context, idToken string) (*OAuthUserInfo, error) {
	return m.VerifyIDTokenFunc(ctx, idToken)
}

type mockCodeClient struct {
	GetAuthURLFunc   func(state string) (string, string, error)
	ExchangeCodeFunc func(ctx context.Context, code, verifier string) (string, error)
	GetUserInfoFunc  func(ctx context.Context, accessToken string) (*OAuthUserInfo, error)
}

func (m *mockCodeClient) GetAuthURL(state string) (string, string, error) {
	return m.GetAuthURLFunc(state)
}

func (m *mockCodeClient) ExchangeCode(ctx context.Context, code, verifier string) (string, error) {
	return m.ExchangeCodeFunc(ctx, code, verifier)
}

func (m *mockCodeClient) GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
	return m.GetUserInfoFunc(ctx, accessToken)
}

// memoryStateStore is a one-shot map mirroring the Redis store semantics.
type memoryStateStore struct {
	values map[string]string
}

func newMemoryStateStore() *memoryStateStore {
	return &memoryStateStore{values: map[string]string{}}
}

func (s *memoryStateStore) Save(_ context.Context, state, verifier string, _ time.Duration) error {
	s.values[state] = verifier
	return nil
}

func (s *memoryStateStore) Consume(_ context.Context, state string) (string, error) {
	v, ok := s.values[state]
	if !ok {
		return "", errors.NewNotFoundError("state not found")
	}
	delete(s.values, state)
	return v, nil
}

type mockSessions struct {
	issued []uint
}

func (m *mockSessions) Issue(u *user.User) (string, time.Time, error) {
	m.issued = append(m.issued, u.ID())
	return "signed-token", time.Now().Add(7 * 24 * time.Hour), nil
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func newTestLogger() logger.Interface {
	return logger.NewNopLogger()
}
