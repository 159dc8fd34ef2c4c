package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
	"github.com/nhadat/marketplace/internal/shared/db"
	apperrors "github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// CreditLedger implements user.CreditLedger with conditional UPDATE
// statements, so the check and the decrement happen in one row write.
type CreditLedger struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCreditLedger(db *gorm.DB, logger logger.Interface) *CreditLedger {
	return &CreditLedger{db: db, logger: logger}
}

func (l *CreditLedger) ConsumeOneCredit(ctx context.Context, userID uint) (user.CreditSource, error) {
	tx := db.GetTxFromContext(ctx, l.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ? AND status = ? AND free_listings_remaining > 0", userID, "active").
		Update("free_listings_remaining", gorm.Expr("free_listings_remaining - 1"))
	if result.Error != nil {
		return "", fmt.Errorf("failed to consume free credit: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return user.CreditSourceFree, nil
	}

	result = tx.Model(&models.UserModel{}).
		Where("id = ? AND status = ? AND paid_listings_remaining > 0", userID, "active").
		Update("paid_listings_remaining", gorm.Expr("paid_listings_remaining - 1"))
	if result.Error != nil {
		return "", fmt.Errorf("failed to consume paid credit: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return user.CreditSourcePaid, nil
	}

	// Nothing was decremented; work out why.
	var model models.UserModel
	if err := tx.Select("id", "status").First(&model, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperrors.NewNotFoundError("User not found")
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if model.Status != "active" {
		return "", apperrors.NewForbiddenError("Account locked")
	}

	l.logger.Infow("listing credit refused, balance empty", "user_id", userID)
	return "", apperrors.NewInsufficientCreditsError()
}

func (l *CreditLedger) GrantCredits(ctx context.Context, userID uint, amount int) error {
	if amount <= 0 {
		return apperrors.NewValidationError("credit amount must be positive")
	}

	tx := db.GetTxFromContext(ctx, l.db)
	result := tx.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Update("paid_listings_remaining", gorm.Expr("paid_listings_remaining + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to grant credits: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("User not found")
	}

	l.logger.Infow("listing credits granted", "user_id", userID, "amount", amount)
	return nil
}
