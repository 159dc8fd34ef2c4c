package chat

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nhadat/marketplace/internal/shared/biztime"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/id"
)

type Message struct {
	id        uint
	sid       string
	chatID    uint
	senderID  uint
	content   string
	read      bool
	createdAt time.Time
}

// NewMessage trims content and rejects empty or oversized text.
func NewMessage(chatID, senderID uint, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.NewBadRequestError("Message content is required")
	}
	if utf8.RuneCountInString(content) > constants.MaxMessageLength {
		return nil, errors.NewBadRequestError(
			fmt.Sprintf("Message content must be at most %d characters", constants.MaxMessageLength),
		)
	}

	sid, err := id.NewSID(id.PrefixMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to generate message ID: %w", err)
	}

	return &Message{
		sid:       sid,
		chatID:    chatID,
		senderID:  senderID,
		content:   content,
		createdAt: biztime.NowUTC(),
	}, nil
}

type MessageParams struct {
	ID        uint
	SID       string
	ChatID    uint
	SenderID  uint
	Content   string
	Read      bool
	CreatedAt time.Time
}

func ReconstructMessage(p MessageParams) (*Message, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	return &Message{
		id:        p.ID,
		sid:       p.SID,
		chatID:    p.ChatID,
		senderID:  p.SenderID,
		content:   p.Content,
		read:      p.Read,
		createdAt: p.CreatedAt,
	}, nil
}

func (m *Message) ID() uint             { return m.id }
func (m *Message) SID() string          { return m.sid }
func (m *Message) ChatID() uint         { return m.chatID }
func (m *Message) SenderID() uint       { return m.senderID }
func (m *Message) Content() string      { return m.content }
func (m *Message) IsRead() bool         { return m.read }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// MarkRead is applied in memory after the bulk read update so the caller
// sees the state it just produced.
func (m *Message) MarkRead() {
	m.read = true
}
