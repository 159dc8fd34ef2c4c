package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/mappers"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
	"github.com/nhadat/marketplace/internal/shared/db"
	apperrors "github.com/nhadat/marketplace/internal/shared/errors"
)

type PackageRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *PackageRepository) GetByID(ctx context.Context, id uint) (*order.Package, error) {
	var model models.PackageModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Package not found")
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return r.mapper.PackageToEntity(&model)
}

func (r *PackageRepository) GetActiveBySlug(ctx context.Context, slug string) (*order.Package, error) {
	var model models.PackageModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Package not found")
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return r.mapper.PackageToEntity(&model)
}

func (r *PackageRepository) ListActive(ctx context.Context) ([]*order.Package, error) {
	var list []models.PackageModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("is_active = ?", true).
		Order("listing_credits ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	packages := make([]*order.Package, 0, len(list))
	for i := range list {
		pkg, err := r.mapper.PackageToEntity(&list[i])
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

func (r *PackageRepository) Upsert(ctx context.Context, pkg *order.Package) error {
	model := r.mapper.PackageToModel(pkg)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "price", "listing_credits", "description", "is_active", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert package %s: %w", pkg.Slug(), err)
	}
	return nil
}
