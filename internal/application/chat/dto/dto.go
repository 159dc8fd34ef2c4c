package dto

import (
	"time"

	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/chat"
	"github.com/nhadat/marketplace/internal/domain/property"
)

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// PropertyBrief is the listing preview shown in a conversation header.
type PropertyBrief struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	Price     float64  `json:"price"`
	PriceUnit string   `json:"price_unit"`
	Images    []string `json:"images"`
}

type ChatResponse struct {
	ID            string                 `json:"id"`
	Property      *PropertyBrief         `json:"property"`
	Participants  []*userdto.UserSummary `json:"participants"`
	LastMessage   string                 `json:"last_message,omitempty"`
	LastMessageAt *time.Time             `json:"last_message_at"`
	UnreadCount   int64                  `json:"unread_count"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type MessageResponse struct {
	ID        string               `json:"id"`
	ChatID    string               `json:"chat_id"`
	Sender    *userdto.UserSummary `json:"sender"`
	Content   string               `json:"content"`
	Read      bool                 `json:"read"`
	CreatedAt time.Time            `json:"created_at"`
}

func ToPropertyBrief(p *property.Property) *PropertyBrief {
	if p == nil {
		return nil
	}
	d := p.Details()
	return &PropertyBrief{
		ID:        p.SID(),
		Title:     d.Title,
		Location:  d.Location,
		Price:     d.Price,
		PriceUnit: string(d.PriceUnit),
		Images:    d.Images,
	}
}

func ToChatResponse(c *chat.Chat, brief *PropertyBrief, users map[uint]*userdto.UserSummary, unread int64) *ChatResponse {
	participants := make([]*userdto.UserSummary, 0, 2)
	for _, id := range c.Participants() {
		if u, ok := users[id]; ok && u != nil {
			participants = append(participants, u)
		}
	}
	return &ChatResponse{
		ID:            c.SID(),
		Property:      brief,
		Participants:  participants,
		LastMessage:   c.LastMessage(),
		LastMessageAt: c.LastMessageAt(),
		UnreadCount:   unread,
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func ToMessageResponse(m *chat.Message, chatSID string, sender *userdto.UserSummary) *MessageResponse {
	return &MessageResponse{
		ID:        m.SID(),
		ChatID:    chatSID,
		Sender:    sender,
		Content:   m.Content(),
		Read:      m.IsRead(),
		CreatedAt: m.CreatedAt(),
	}
}
