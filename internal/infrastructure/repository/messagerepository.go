package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nhadat/marketplace/internal/domain/chat"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/mappers"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
	"github.com/nhadat/marketplace/internal/shared/db"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.ChatMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewChatMapper(),
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *chat.Message) error {
	model := r.mapper.MessageToModel(msg)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return msg.SetID(model.ID)
}

// ListRecent reads the newest limit rows descending and reverses them so the
// caller gets chronological order.
func (r *MessageRepository) ListRecent(ctx context.Context, chatID uint, limit int) ([]*chat.Message, error) {
	var list []models.MessageModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*chat.Message, len(list))
	for i := range list {
		msg, err := r.mapper.MessageToEntity(&list[i])
		if err != nil {
			return nil, err
		}
		messages[len(list)-1-i] = msg
	}
	return messages, nil
}

func (r *MessageRepository) MarkReadForViewer(ctx context.Context, chatID, viewerID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.MessageModel{}).
		Where("chat_id = ? AND sender_id <> ? AND is_read = ?", chatID, viewerID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, chatIDs []uint, viewerID uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(chatIDs))
	if len(chatIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ChatID uint
		Total  int64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MessageModel{}).
		Select("chat_id, COUNT(*) AS total").
		Where("chat_id IN ? AND sender_id <> ? AND is_read = ?", chatIDs, viewerID, false).
		Group("chat_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	for _, row := range rows {
		counts[row.ChatID] = row.Total
	}
	return counts, nil
}

