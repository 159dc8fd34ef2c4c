package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/domain/user"
	uservo "github.com/nhadat/marketplace/internal/domain/user/valueobjects"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
	"github.com/nhadat/marketplace/internal/infrastructure/repository"
	"github.com/nhadat/marketplace/internal/shared/db"
)

func openLedgerDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func registerSeller(t *testing.T, users *repository.UserRepository) *user.User {
	t.Helper()
	email, err := uservo.NewEmail("seller@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "Seller")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

// failingCreateRepository stores nothing and reports the balance it saw
// inside the transaction.
type failingCreateRepository struct {
	*repository.PropertyRepository
	users    *repository.UserRepository
	freeSeen int
}

func (r *failingCreateRepository) Create(ctx context.Context, p *property.Property) error {
	u, err := r.users.GetByID(ctx, p.OwnerID())
	if err != nil {
		return err
	}
	r.freeSeen = u.FreeListingsRemaining()
	return stderrors.New("insert properties: disk full")
}

func TestCreatePropertyUseCase_FailedInsertRestoresCredit(t *testing.T) {
	gdb := openLedgerDB(t)
	ctx := context.Background()
	users := repository.NewUserRepository(gdb, newTestLogger())
	seller := registerSeller(t, users)

	repo := &failingCreateRepository{PropertyRepository: repository.NewPropertyRepository(gdb), users: users, freeSeen: -1}
	uc := NewCreatePropertyUseCase(db.NewTransactionManager(gdb), repository.NewCreditLedger(gdb, newTestLogger()), repo, newTestLogger())

	_, err := uc.Execute(ctx, CreatePropertyCommand{OwnerID: seller.ID(), Details: validDetails()})
	require.Error(t, err)
	assert.Equal(t, 2, repo.freeSeen, "credit should be taken before the insert")

	stored, err := users.GetByID(ctx, seller.ID())
	require.NoError(t, err)
	assert.Equal(t, 3, stored.FreeListingsRemaining())
	assert.Equal(t, 0, stored.PaidListingsRemaining())

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreatePropertyUseCase_CommitsCreditAndListingTogether(t *testing.T) {
	gdb := openLedgerDB(t)
	ctx := context.Background()
	users := repository.NewUserRepository(gdb, newTestLogger())
	seller := registerSeller(t, users)
	properties := repository.NewPropertyRepository(gdb)

	uc := NewCreatePropertyUseCase(db.NewTransactionManager(gdb), repository.NewCreditLedger(gdb, newTestLogger()), properties, newTestLogger())
	resp, err := uc.Execute(ctx, CreatePropertyCommand{OwnerID: seller.ID(), Details: validDetails()})
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, seller.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, stored.FreeListingsRemaining())

	listing, err := properties.GetBySID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, seller.ID(), listing.OwnerID())
}
