package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, nopLogger())
	ctx := context.Background()

	u := createTestUser(t, repo, "Mai.Nguyen@Example.com")
	assert.NotZero(t, u.ID())

	byEmail, err := repo.GetByEmail(ctx, "MAI.NGUYEN@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID(), byEmail.ID())
	assert.Equal(t, "mai.nguyen", byEmail.Name())
	assert.Equal(t, authorization.RoleUser, byEmail.Role())
	assert.Equal(t, 3, byEmail.FreeListingsRemaining())

	bySID, err := repo.GetBySID(ctx, u.SID())
	require.NoError(t, err)
	assert.Equal(t, u.ID(), bySID.ID())

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.GetByID(ctx, 4242)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, nopLogger())

	createTestUser(t, repo, "dup@example.com")

	e := createTestUser(t, repo, "other@example.com").Email()
	again, err := user.NewUser(e, "Again")
	require.NoError(t, err)
	err = repo.Create(context.Background(), again)
	assert.True(t, errors.IsConflictError(err))
}

func TestUserRepository_ListAndCount(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, nopLogger())
	ctx := context.Background()

	createTestUser(t, repo, "an@example.com")
	createTestUser(t, repo, "binh@example.com")
	locked := createTestUser(t, repo, "chi@example.com")
	locked.ToggleLock()
	require.NoError(t, repo.Update(ctx, locked))

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	list, n, err := repo.List(ctx, user.ListFilter{Status: "locked", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.Len(t, list, 1)
	assert.Equal(t, locked.ID(), list[0].ID())

	list, n, err = repo.List(ctx, user.ListFilter{Search: "BINH", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, "binh@example.com", list[0].Email().String())

	byIDs, err := repo.GetByIDs(ctx, []uint{locked.ID()})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)
}

func TestUserRepository_UpdateIdentityKeepsConcurrentLock(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, nopLogger())
	ctx := context.Background()

	u := createTestUser(t, repo, "lan@example.com")
	signingIn, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)

	admin, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	admin.ToggleLock()
	require.NoError(t, repo.Update(ctx, admin))

	signingIn.LinkIdentity("g-42", "https://img/lan.png")
	require.NoError(t, repo.UpdateIdentity(ctx, signingIn))

	stored, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsLocked())
	assert.Equal(t, "g-42", stored.GoogleID())
	assert.Equal(t, "https://img/lan.png", stored.Avatar())

	missing, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	require.NoError(t, gdb.Exec("DELETE FROM users WHERE id = ?", u.ID()).Error)
	assert.True(t, errors.IsNotFoundError(repo.UpdateIdentity(ctx, missing)))
}
