package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nhadat/marketplace/internal/domain/chat"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/mappers"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
	"github.com/nhadat/marketplace/internal/shared/db"
	apperrors "github.com/nhadat/marketplace/internal/shared/errors"
)

type ChatRepository struct {
	db     *gorm.DB
	mapper mappers.ChatMapper
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{
		db:     db,
		mapper: mappers.NewChatMapper(),
	}
}

// Create inserts a chat. A concurrent insert for the same participants
// surfaces as a Conflict from the unique index.
func (r *ChatRepository) Create(ctx context.Context, entity *chat.Chat) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("chat already exists")
		}
		return fmt.Errorf("failed to create chat: %w", err)
	}

	return entity.SetID(model.ID)
}

func (r *ChatRepository) GetByID(ctx context.Context, id uint) (*chat.Chat, error) {
	var model models.ChatModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Chat not found")
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ChatRepository) GetBySID(ctx context.Context, sid string) (*chat.Chat, error) {
	var model models.ChatModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Chat not found")
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ChatRepository) FindByParticipants(ctx context.Context, propertyID, sellerID, buyerID uint) (*chat.Chat, error) {
	var model models.ChatModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("property_id = ? AND seller_id = ? AND buyer_id = ?", propertyID, sellerID, buyerID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find chat: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ChatRepository) ListForUser(ctx context.Context, userID uint) ([]*chat.Chat, error) {
	var list []models.ChatModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("seller_id = ? OR buyer_id = ?", userID, userID).
		Order("COALESCE(last_message_at, updated_at) DESC").
		Order("id DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *ChatRepository) UpdateLastMessage(ctx context.Context, chatID uint, content string, at time.Time) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ChatModel{}).
		Where("id = ?", chatID).
		Updates(map[string]interface{}{
			"last_message":    content,
			"last_message_at": at,
			"updated_at":      at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update chat preview: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Chat not found")
	}
	return nil
}
