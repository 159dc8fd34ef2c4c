package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/chat/dto"
	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/chat"
	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
)

// chatHydrator joins participants and listing previews onto chats.
type chatHydrator struct {
	userRepo     user.Repository
	propertyRepo property.Repository
}

func (h chatHydrator) hydrate(ctx context.Context, chats []*chat.Chat, unread map[uint]int64) ([]*dto.ChatResponse, error) {
	userIDs := make([]uint, 0, len(chats)*2)
	seen := map[uint]bool{}
	for _, c := range chats {
		for _, id := range c.Participants() {
			if !seen[id] {
				seen[id] = true
				userIDs = append(userIDs, id)
			}
		}
	}

	users := map[uint]*userdto.UserSummary{}
	if len(userIDs) > 0 {
		found, err := h.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load participants: %w", err)
		}
		users = userdto.SummariesByID(found)
	}

	briefs := map[uint]*dto.PropertyBrief{}
	out := make([]*dto.ChatResponse, 0, len(chats))
	for _, c := range chats {
		brief, ok := briefs[c.PropertyID()]
		if !ok {
			p, err := h.propertyRepo.GetByID(ctx, c.PropertyID())
			if err != nil && !errors.IsNotFoundError(err) {
				return nil, fmt.Errorf("failed to load property: %w", err)
			}
			// deleted listings keep their conversations
			brief = dto.ToPropertyBrief(p)
			briefs[c.PropertyID()] = brief
		}
		out = append(out, dto.ToChatResponse(c, brief, users, unread[c.ID()]))
	}
	return out, nil
}

// loadParticipantChat fetches a chat and refuses callers outside it.
func loadParticipantChat(ctx context.Context, repo chat.Repository, chatSID string, callerID uint, denied string) (*chat.Chat, error) {
	c, err := repo.GetBySID(ctx, chatSID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("Chat not found")
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	if !c.IsParticipant(callerID) {
		return nil, errors.NewForbiddenError(denied)
	}
	return c, nil
}
