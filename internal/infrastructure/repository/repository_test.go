package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/domain/user"
	uservo "github.com/nhadat/marketplace/internal/domain/user/valueobjects"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
	applogger "github.com/nhadat/marketplace/internal/shared/logger"
)

// setupTestDB opens a single-connection in-memory database so every
// goroutine in a test sees the same schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func createTestUser(t *testing.T, repo *UserRepository, email string) *user.User {
	t.Helper()
	e, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser(e, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func newTestProperty(t *testing.T, ownerID uint, title, location string, price float64) *property.Property {
	t.Helper()
	p, err := property.NewProperty(ownerID, property.Details{
		Title:       title,
		Description: "Mô tả chi tiết đủ dài cho tin đăng thử nghiệm",
		Price:       price,
		PriceUnit:   vo.PriceUnitBillion,
		Location:    location,
		Area:        50,
	})
	require.NoError(t, err)
	return p
}

func nopLogger() applogger.Interface {
	return applogger.NewNopLogger()
}
