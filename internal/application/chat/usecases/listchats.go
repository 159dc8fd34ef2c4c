package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/chat/dto"
	"github.com/nhadat/marketplace/internal/domain/chat"
	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// ListChatsUseCase is the caller's inbox, most recent activity first, with
// the number of unread messages from the other participant on each chat.
type ListChatsUseCase struct {
	chatRepo    chat.Repository
	messageRepo chat.MessageRepository
	hydrator    chatHydrator
	logger      logger.Interface
}

func NewListChatsUseCase(
	chatRepo chat.Repository,
	messageRepo chat.MessageRepository,
	userRepo user.Repository,
	propertyRepo property.Repository,
	logger logger.Interface,
) *ListChatsUseCase {
	return &ListChatsUseCase{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		hydrator:    chatHydrator{userRepo: userRepo, propertyRepo: propertyRepo},
		logger:      logger,
	}
}

func (uc *ListChatsUseCase) Execute(ctx context.Context, userID uint) ([]*dto.ChatResponse, error) {
	chats, err := uc.chatRepo.ListForUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list chats", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	if len(chats) == 0 {
		return []*dto.ChatResponse{}, nil
	}

	ids := make([]uint, 0, len(chats))
	for _, c := range chats {
		ids = append(ids, c.ID())
	}
	unread, err := uc.messageRepo.CountUnread(ctx, ids, userID)
	if err != nil {
		uc.logger.Errorw("failed to count unread messages", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return uc.hydrator.hydrate(ctx, chats, unread)
}

// GetChatUseCase returns one conversation to a participant.
type GetChatUseCase struct {
	chatRepo    chat.Repository
	messageRepo chat.MessageRepository
	hydrator    chatHydrator
	logger      logger.Interface
}

func NewGetChatUseCase(
	chatRepo chat.Repository,
	messageRepo chat.MessageRepository,
	userRepo user.Repository,
	propertyRepo property.Repository,
	logger logger.Interface,
) *GetChatUseCase {
	return &GetChatUseCase{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		hydrator:    chatHydrator{userRepo: userRepo, propertyRepo: propertyRepo},
		logger:      logger,
	}
}

func (uc *GetChatUseCase) Execute(ctx context.Context, chatSID string, callerID uint) (*dto.ChatResponse, error) {
	c, err := loadParticipantChat(ctx, uc.chatRepo, chatSID, callerID, "Not authorized to view this chat")
	if err != nil {
		return nil, err
	}

	unread, err := uc.messageRepo.CountUnread(ctx, []uint{c.ID()}, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	out, err := uc.hydrator.hydrate(ctx, []*chat.Chat{c}, unread)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}
