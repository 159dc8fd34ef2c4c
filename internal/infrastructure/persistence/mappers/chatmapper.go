package mappers

import (
	"fmt"

	"github.com/nhadat/marketplace/internal/domain/chat"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
)

type ChatMapper interface {
	ToEntity(model *models.ChatModel) (*chat.Chat, error)
	ToModel(entity *chat.Chat) *models.ChatModel
	ToEntities(models []models.ChatModel) ([]*chat.Chat, error)
	MessageToEntity(model *models.MessageModel) (*chat.Message, error)
	MessageToModel(entity *chat.Message) *models.MessageModel
}

type ChatMapperImpl struct{}

func NewChatMapper() ChatMapper {
	return &ChatMapperImpl{}
}

func (m *ChatMapperImpl) ToEntity(model *models.ChatModel) (*chat.Chat, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := chat.ReconstructChat(chat.ChatParams{
		ID:            model.ID,
		SID:           model.SID,
		PropertyID:    model.PropertyID,
		SellerID:      model.SellerID,
		BuyerID:       model.BuyerID,
		LastMessage:   model.LastMessage,
		LastMessageAt: model.LastMessageAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct chat %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *ChatMapperImpl) ToModel(entity *chat.Chat) *models.ChatModel {
	if entity == nil {
		return nil
	}
	return &models.ChatModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		PropertyID:    entity.PropertyID(),
		SellerID:      entity.SellerID(),
		BuyerID:       entity.BuyerID(),
		LastMessage:   entity.LastMessage(),
		LastMessageAt: entity.LastMessageAt(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *ChatMapperImpl) ToEntities(list []models.ChatModel) ([]*chat.Chat, error) {
	entities := make([]*chat.Chat, 0, len(list))
	for i := range list {
		entity, err := m.ToEntity(&list[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *ChatMapperImpl) MessageToEntity(model *models.MessageModel) (*chat.Message, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := chat.ReconstructMessage(chat.MessageParams{
		ID:        model.ID,
		SID:       model.SID,
		ChatID:    model.ChatID,
		SenderID:  model.SenderID,
		Content:   model.Content,
		Read:      model.IsRead,
		CreatedAt: model.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct message %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *ChatMapperImpl) MessageToModel(entity *chat.Message) *models.MessageModel {
	if entity == nil {
		return nil
	}
	return &models.MessageModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		ChatID:    entity.ChatID(),
		SenderID:  entity.SenderID(),
		Content:   entity.Content(),
		IsRead:    entity.IsRead(),
		CreatedAt: entity.CreatedAt(),
	}
}
