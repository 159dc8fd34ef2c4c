package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/mappers"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
	"github.com/nhadat/marketplace/internal/shared/db"
	apperrors "github.com/nhadat/marketplace/internal/shared/errors"
)

type PropertyRepository struct {
	db     *gorm.DB
	mapper mappers.PropertyMapper
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{
		db:     db,
		mapper: mappers.NewPropertyMapper(),
	}
}

func (r *PropertyRepository) Create(ctx context.Context, entity *property.Property) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	return entity.SetID(model.ID)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	var model models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Property not found")
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PropertyRepository) GetBySID(ctx context.Context, sid string) (*property.Property, error) {
	var model models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Property not found")
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update writes every column, including the nil moderation fields that
// Updates(struct) would otherwise skip. The aggregate has already bumped its
// version, so the row must still carry the previous one.
func (r *PropertyRepository) Update(ctx context.Context, entity *property.Property) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.PropertyModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").
		Omit("id", "sid", "owner_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update property: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("Property was modified by another request, reload and try again")
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PropertyModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete property: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Property not found")
	}
	return nil
}

func (r *PropertyRepository) List(ctx context.Context, filter property.ListFilter) ([]*property.Property, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PropertyModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if strings.TrimSpace(filter.Location) != "" {
		query = query.Where("LOWER(location) LIKE ? ESCAPE '!'", containsPattern(filter.Location))
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", string(filter.PropertyType))
	}
	if filter.ListingType != "" {
		query = query.Where("listing_type = ?", string(filter.ListingType))
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if strings.TrimSpace(filter.Query) != "" {
		pattern := containsPattern(filter.Query)
		query = query.Where(
			"(LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!' OR LOWER(location) LIKE ? ESCAPE '!')",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var list []models.PropertyModel
	if err := query.Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}

	properties, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*property.Property, error) {
	var list []models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("owner_id = ?", ownerID).Order("created_at DESC").Order("id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list owner properties: %w", err)
	}

	return r.mapper.ToEntities(list)
}

func (r *PropertyRepository) Count(ctx context.Context, status *vo.PropertyStatus) (int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PropertyModel{})
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return total, nil
}
