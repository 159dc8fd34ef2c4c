package models

import "time"

type ChatModel struct {
	ID            uint       `gorm:"primarykey"`
	SID           string     `gorm:"column:sid;uniqueIndex;not null;size:50"`
	PropertyID    uint       `gorm:"not null;uniqueIndex:idx_chat_participants,priority:1"`
	SellerID      uint       `gorm:"not null;uniqueIndex:idx_chat_participants,priority:2;index"`
	BuyerID       uint       `gorm:"not null;uniqueIndex:idx_chat_participants,priority:3;index"`
	LastMessage   string     `gorm:"type:text"`
	LastMessageAt *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ChatModel) TableName() string {
	return "chats"
}

type MessageModel struct {
	ID        uint      `gorm:"primarykey"`
	SID       string    `gorm:"column:sid;uniqueIndex;not null;size:50"`
	ChatID    uint      `gorm:"not null;index:idx_message_chat_created,priority:1"`
	SenderID  uint      `gorm:"not null;index"`
	Content   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"column:is_read;not null"`
	CreatedAt time.Time `gorm:"index:idx_message_chat_created,priority:2"`
}

func (MessageModel) TableName() string {
	return "messages"
}
