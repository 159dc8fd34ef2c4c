package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/mappers"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
	"github.com/nhadat/marketplace/internal/shared/db"
	apperrors "github.com/nhadat/marketplace/internal/shared/errors"
)

type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepository) Create(ctx context.Context, entity *order.Order) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return entity.SetID(model.ID)
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrderRepository) GetBySID(ctx context.Context, sid string) (*order.Order, error) {
	var model models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID uint) ([]*order.Order, error) {
	var list []models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).Order("created_at DESC").Order("id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list user orders: %w", err)
	}

	return r.mapper.ToEntities(list)
}

func (r *OrderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var list []models.OrderModel
	if err := query.Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// MarkPaidIfPending is the compare-and-set guarding the credit grant: of
// several concurrent callers only one sees RowsAffected == 1.
func (r *OrderRepository) MarkPaidIfPending(ctx context.Context, id uint, markedBy uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", id, order.StatusPending.String()).
		Updates(map[string]interface{}{
			"status":    order.StatusPaid.String(),
			"marked_by": markedBy,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark order paid: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}
