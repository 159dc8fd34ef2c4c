package chat

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, chat *Chat) error
	GetByID(ctx context.Context, id uint) (*Chat, error)
	GetBySID(ctx context.Context, sid string) (*Chat, error)
	// FindByParticipants returns nil, nil when no conversation exists yet.
	FindByParticipants(ctx context.Context, propertyID, sellerID, buyerID uint) (*Chat, error)
	// ListForUser returns the user's chats, most recent activity first.
	ListForUser(ctx context.Context, userID uint) ([]*Chat, error)
	UpdateLastMessage(ctx context.Context, chatID uint, content string, at time.Time) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	// ListRecent returns at most limit of the newest messages, oldest first.
	ListRecent(ctx context.Context, chatID uint, limit int) ([]*Message, error)
	// MarkReadForViewer marks every unread message not sent by viewerID as read.
	MarkReadForViewer(ctx context.Context, chatID, viewerID uint) (int64, error)
	// CountUnread returns unread counts keyed by chat for messages not sent by viewerID.
	CountUnread(ctx context.Context, chatIDs []uint, viewerID uint) (map[uint]int64, error)
}
