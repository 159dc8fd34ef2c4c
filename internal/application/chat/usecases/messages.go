package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhadat/marketplace/internal/application/chat/dto"
	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/chat"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/db"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// GetMessagesUseCase returns the latest messages of a chat oldest first and
// marks everything the other participant sent as read.
type GetMessagesUseCase struct {
	chatRepo    chat.Repository
	messageRepo chat.MessageRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewGetMessagesUseCase(
	chatRepo chat.Repository,
	messageRepo chat.MessageRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetMessagesUseCase {
	return &GetMessagesUseCase{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *GetMessagesUseCase) Execute(ctx context.Context, chatSID string, callerID uint) ([]*dto.MessageResponse, error) {
	c, err := loadParticipantChat(ctx, uc.chatRepo, chatSID, callerID, "Not authorized to view this chat")
	if err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.ListRecent(ctx, c.ID(), constants.MessageHistoryLimit)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "chat_id", c.ID(), "error", err)
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	marked, err := uc.messageRepo.MarkReadForViewer(ctx, c.ID(), callerID)
	if err != nil {
		uc.logger.Errorw("failed to mark messages read", "chat_id", c.ID(), "error", err)
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}
	if marked > 0 {
		uc.logger.Debugw("messages marked read", "chat_id", c.ID(), "viewer_id", callerID, "count", marked)
	}

	participants, err := uc.userRepo.GetByIDs(ctx, c.Participants())
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	senders := userdto.SummariesByID(participants)

	out := make([]*dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.ToMessageResponse(m, c.SID(), senders[m.SenderID()]))
	}
	return out, nil
}

type SendMessageCommand struct {
	ChatSID  string
	SenderID uint
	Content  string
}

// SendMessageUseCase stores a message and refreshes the chat preview in one
// transaction, then pushes it to both participants.
type SendMessageUseCase struct {
	txMgr       db.Transactor
	chatRepo    chat.Repository
	messageRepo chat.MessageRepository
	userRepo    user.Repository
	publisher   MessagePublisher
	logger      logger.Interface
}

func NewSendMessageUseCase(
	txMgr db.Transactor,
	chatRepo chat.Repository,
	messageRepo chat.MessageRepository,
	userRepo user.Repository,
	publisher MessagePublisher,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		txMgr:       txMgr,
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageResponse, error) {
	uc.logger.Infow("executing send message use case", "chat_sid", cmd.ChatSID, "sender_id", cmd.SenderID)

	if strings.TrimSpace(cmd.Content) == "" {
		return nil, errors.NewBadRequestError("Message content is required")
	}

	c, err := loadParticipantChat(ctx, uc.chatRepo, cmd.ChatSID, cmd.SenderID, "Not authorized to send message in this chat")
	if err != nil {
		return nil, err
	}

	msg, err := chat.NewMessage(c.ID(), cmd.SenderID, cmd.Content)
	if err != nil {
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.Create(txCtx, msg); err != nil {
			return err
		}
		return uc.chatRepo.UpdateLastMessage(txCtx, c.ID(), msg.Content(), msg.CreatedAt())
	})
	if err != nil {
		uc.logger.Errorw("failed to send message", "chat_id", c.ID(), "error", err)
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	c.RecordMessage(msg)

	var sender *userdto.UserSummary
	if u, err := uc.userRepo.GetByID(ctx, cmd.SenderID); err == nil {
		sender = userdto.ToUserSummary(u)
	}
	resp := dto.ToMessageResponse(msg, c.SID(), sender)

	if uc.publisher != nil {
		uc.publisher.PublishMessage(c.Participants(), resp)
	}
	return resp, nil
}
