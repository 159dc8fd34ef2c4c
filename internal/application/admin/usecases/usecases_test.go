package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/errors"
)

func newUser(t *testing.T, id uint, sid, status string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(user.ReconstructParams{
		ID: id, SID: sid, Email: sid + "@example.com", Name: sid, Role: "user", Status: status,
	})
	require.NoError(t, err)
	return u
}

func TestGetStatsUseCase(t *testing.T) {
	users := &mockUserRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 12, nil },
	}
	properties := &mockPropertyRepository{
		CountFunc: func(ctx context.Context, status *vo.PropertyStatus) (int64, error) {
			if status == nil {
				return 40, nil
			}
			assert.Equal(t, vo.PropertyStatusPending, *status)
			return 7, nil
		},
	}

	stats, err := NewGetStatsUseCase(users, properties, newTestLogger()).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(40), stats.TotalProperties)
	assert.Equal(t, int64(7), stats.PendingProperties)
}

func TestGetStatsUseCase_CountFailure(t *testing.T) {
	properties := &mockPropertyRepository{
		CountFunc: func(ctx context.Context, status *vo.PropertyStatus) (int64, error) {
			return 0, stderrors.New("connection reset")
		},
	}

	_, err := NewGetStatsUseCase(&mockUserRepository{}, properties, newTestLogger()).Execute(context.Background())
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestListUsersUseCase(t *testing.T) {
	var got user.ListFilter
	repo := &mockUserRepository{
		ListFunc: func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
			got = filter
			return []*user.User{newUser(t, 1, "usr_a", "active")}, 31, nil
		},
	}

	res, err := NewListUsersUseCase(repo, newTestLogger()).Execute(context.Background(), ListUsersQuery{
		Page: 2, PageSize: 500, Role: "staff", Status: "locked", Search: "  nguyen ",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, constants.MaxPageSize, got.PageSize)
	assert.Equal(t, "nguyen", got.Search)
	assert.Equal(t, "staff", got.Role)
	assert.Equal(t, int64(31), res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "usr_a", res.Items[0].ID)
}

func TestListUsersUseCase_InvalidFilters(t *testing.T) {
	tests := []struct {
		name  string
		query ListUsersQuery
	}{
		{name: "unknown role", query: ListUsersQuery{Role: "owner"}},
		{name: "unknown status", query: ListUsersQuery{Status: "banned"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewListUsersUseCase(&mockUserRepository{}, newTestLogger()).Execute(context.Background(), tt.query)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestToggleUserLockUseCase(t *testing.T) {
	target := newUser(t, 5, "usr_target", "active")
	updates := 0
	repo := &mockUserRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*user.User, error) {
			if sid == "usr_target" {
				return target, nil
			}
			return nil, errors.NewNotFoundError("user not found")
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updates++
			return nil
		},
	}
	uc := NewToggleUserLockUseCase(repo, newTestLogger())

	resp, err := uc.Execute(context.Background(), ToggleUserLockCommand{UserSID: "usr_target", AdminID: 1})
	require.NoError(t, err)
	assert.Equal(t, "locked", resp.Status)
	assert.True(t, target.IsLocked())

	resp, err = uc.Execute(context.Background(), ToggleUserLockCommand{UserSID: "usr_target", AdminID: 1})
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 2, updates)

	_, err = uc.Execute(context.Background(), ToggleUserLockCommand{UserSID: "usr_missing", AdminID: 1})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestToggleUserLockUseCase_CannotLockSelf(t *testing.T) {
	self := newUser(t, 1, "usr_admin", "active")
	repo := &mockUserRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*user.User, error) { return self, nil },
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			t.Fatal("self lock must not be persisted")
			return nil
		},
	}

	_, err := NewToggleUserLockUseCase(repo, newTestLogger()).Execute(context.Background(), ToggleUserLockCommand{UserSID: "usr_admin", AdminID: 1})
	assert.True(t, errors.IsBadRequestError(err))
	assert.False(t, self.IsLocked())
}
