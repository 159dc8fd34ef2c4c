package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/mappers"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
	"github.com/nhadat/marketplace/internal/shared/db"
	apperrors "github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// UserRepository implements user.Repository on gorm.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, log logger.Interface) *UserRepository {
	return &UserRepository{db: db, mapper: mappers.NewUserMapper(), logger: log}
}

func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	row := r.mapper.ToModel(entity)
	if err := db.GetTxFromContext(ctx, r.db).Create(row).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("user already exists", entity.Email().String())
		}
		r.logger.Errorw("insert user failed", "email", row.Email, "error", err)
		return fmt.Errorf("insert user: %w", err)
	}
	if err := entity.SetID(row.ID); err != nil {
		return err
	}
	r.logger.Infow("user registered", "id", row.ID, "sid", row.SID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	return r.findOne(ctx, "sid = ?", sid)
}

// GetByEmail returns (nil, nil) for an unknown address; sign-in uses that
// to decide whether to create the account.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := r.findOne(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
	if apperrors.IsNotFoundError(err) {
		return nil, nil
	}
	return u, err
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}
	var rows []models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load users by id: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

func (r *UserRepository) findOne(ctx context.Context, cond string, arg any) (*user.User, error) {
	var row models.UserModel
	err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.NewNotFoundError("User not found")
	case err != nil:
		return nil, fmt.Errorf("load user: %w", err)
	}
	return r.mapper.ToEntity(&row)
}

// Update writes profile, role and status. Credit columns are left to the
// ledger so a stale aggregate cannot overwrite a concurrent decrement.
func (r *UserRepository) Update(ctx context.Context, entity *user.User) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("name", "google_id", "avatar", "phone", "password_hash", "role", "status", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}

func (r *UserRepository) UpdateIdentity(ctx context.Context, entity *user.User) error {
	model := r.mapper.ToModel(entity)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"google_id":  model.GoogleID,
			"avatar":     model.Avatar,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user identity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := containsPattern(s)
		query = query.Where("(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!')", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize).Offset((filter.Page - 1) * filter.PageSize)
	}

	var list []models.UserModel
	if err := query.Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}
