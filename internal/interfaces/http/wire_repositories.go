package http

import (
	"gorm.io/gorm"

	"github.com/nhadat/marketplace/internal/domain/chat"
	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/infrastructure/repository"
	"github.com/nhadat/marketplace/internal/shared/db"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// repositories holds all repository instances used across the application.
type repositories struct {
	userRepo     user.Repository
	ledger       user.CreditLedger
	propertyRepo property.Repository
	packageRepo  order.PackageRepository
	orderRepo    order.Repository
	chatRepo     chat.Repository
	messageRepo  chat.MessageRepository
	txMgr        *db.TransactionManager
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(gdb *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:     repository.NewUserRepository(gdb, log),
		ledger:       repository.NewCreditLedger(gdb, log),
		propertyRepo: repository.NewPropertyRepository(gdb),
		packageRepo:  repository.NewPackageRepository(gdb),
		orderRepo:    repository.NewOrderRepository(gdb),
		chatRepo:     repository.NewChatRepository(gdb),
		messageRepo:  repository.NewMessageRepository(gdb),
		txMgr:        db.NewTransactionManager(gdb),
	}
}
