package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/chat/dto"
	"github.com/nhadat/marketplace/internal/domain/chat"
	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type GetOrCreateChatCommand struct {
	PropertySID string
	CallerID    uint
}

// GetOrCreateChatUseCase opens the conversation between the caller and the
// listing owner. There is at most one chat per listing and participant pair,
// so repeated calls return the same chat.
type GetOrCreateChatUseCase struct {
	chatRepo     chat.Repository
	propertyRepo property.Repository
	hydrator     chatHydrator
	logger       logger.Interface
}

func NewGetOrCreateChatUseCase(
	chatRepo chat.Repository,
	propertyRepo property.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetOrCreateChatUseCase {
	return &GetOrCreateChatUseCase{
		chatRepo:     chatRepo,
		propertyRepo: propertyRepo,
		hydrator:     chatHydrator{userRepo: userRepo, propertyRepo: propertyRepo},
		logger:       logger,
	}
}

func (uc *GetOrCreateChatUseCase) Execute(ctx context.Context, cmd GetOrCreateChatCommand) (*dto.ChatResponse, error) {
	uc.logger.Infow("executing get or create chat use case", "property_sid", cmd.PropertySID, "caller_id", cmd.CallerID)

	listing, err := uc.propertyRepo.GetBySID(ctx, cmd.PropertySID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("Property not found")
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	sellerID := listing.OwnerID()
	if sellerID == cmd.CallerID {
		return nil, errors.NewBadRequestError("Cannot chat with yourself")
	}

	c, err := uc.chatRepo.FindByParticipants(ctx, listing.ID(), sellerID, cmd.CallerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up chat: %w", err)
	}

	if c == nil {
		c, err = uc.create(ctx, listing.ID(), sellerID, cmd.CallerID)
		if err != nil {
			return nil, err
		}
	}

	out, err := uc.hydrator.hydrate(ctx, []*chat.Chat{c}, nil)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func (uc *GetOrCreateChatUseCase) create(ctx context.Context, propertyID, sellerID, buyerID uint) (*chat.Chat, error) {
	c, err := chat.NewChat(propertyID, sellerID, buyerID)
	if err != nil {
		return nil, err
	}

	if err := uc.chatRepo.Create(ctx, c); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to create chat", "property_id", propertyID, "error", err)
			return nil, fmt.Errorf("failed to create chat: %w", err)
		}
		// lost the race to a concurrent first message
		existing, findErr := uc.chatRepo.FindByParticipants(ctx, propertyID, sellerID, buyerID)
		if findErr != nil || existing == nil {
			return nil, fmt.Errorf("failed to load concurrently created chat: %w", findErr)
		}
		return existing, nil
	}

	uc.logger.Infow("chat created", "chat_id", c.ID(), "property_id", propertyID, "buyer_id", buyerID)
	return c, nil
}
