package chat

import (
	"fmt"
	"time"

	"github.com/nhadat/marketplace/internal/shared/biztime"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/id"
)

// Chat is the conversation between a listing's seller and one buyer.
// LastMessage and LastMessageAt are a preview cache of the newest message
// and can always be rebuilt from the message log.
type Chat struct {
	id            uint
	sid           string
	propertyID    uint
	sellerID      uint
	buyerID       uint
	lastMessage   string
	lastMessageAt *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewChat opens a conversation about propertyID. The seller cannot chat
// with themselves.
func NewChat(propertyID, sellerID, buyerID uint) (*Chat, error) {
	if propertyID == 0 || sellerID == 0 || buyerID == 0 {
		return nil, fmt.Errorf("property, seller and buyer are required")
	}
	if sellerID == buyerID {
		return nil, errors.NewBadRequestError("Cannot start a chat about your own listing")
	}

	sid, err := id.NewSID(id.PrefixConversation)
	if err != nil {
		return nil, fmt.Errorf("failed to generate chat ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Chat{
		sid:        sid,
		propertyID: propertyID,
		sellerID:   sellerID,
		buyerID:    buyerID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type ChatParams struct {
	ID            uint
	SID           string
	PropertyID    uint
	SellerID      uint
	BuyerID       uint
	LastMessage   string
	LastMessageAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructChat(p ChatParams) (*Chat, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("chat ID cannot be zero")
	}
	return &Chat{
		id:            p.ID,
		sid:           p.SID,
		propertyID:    p.PropertyID,
		sellerID:      p.SellerID,
		buyerID:       p.BuyerID,
		lastMessage:   p.LastMessage,
		lastMessageAt: p.LastMessageAt,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

func (c *Chat) ID() uint                  { return c.id }
func (c *Chat) SID() string               { return c.sid }
func (c *Chat) PropertyID() uint          { return c.propertyID }
func (c *Chat) SellerID() uint            { return c.sellerID }
func (c *Chat) BuyerID() uint             { return c.buyerID }
func (c *Chat) LastMessage() string       { return c.lastMessage }
func (c *Chat) LastMessageAt() *time.Time { return c.lastMessageAt }
func (c *Chat) CreatedAt() time.Time      { return c.createdAt }
func (c *Chat) UpdatedAt() time.Time      { return c.updatedAt }

func (c *Chat) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("chat ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("chat ID cannot be zero")
	}
	c.id = id
	return nil
}

// Participants returns the seller and the buyer.
func (c *Chat) Participants() []uint {
	return []uint{c.sellerID, c.buyerID}
}

func (c *Chat) IsParticipant(userID uint) bool {
	return userID != 0 && (userID == c.sellerID || userID == c.buyerID)
}

// OtherParticipant returns the counterpart of userID.
func (c *Chat) OtherParticipant(userID uint) uint {
	if userID == c.sellerID {
		return c.buyerID
	}
	return c.sellerID
}

// LastActivityAt orders chats in a user's inbox.
func (c *Chat) LastActivityAt() time.Time {
	if c.lastMessageAt != nil {
		return *c.lastMessageAt
	}
	return c.updatedAt
}

// RecordMessage refreshes the preview fields from msg.
func (c *Chat) RecordMessage(msg *Message) {
	at := msg.CreatedAt()
	c.lastMessage = msg.Content()
	c.lastMessageAt = &at
	c.updatedAt = at
}
