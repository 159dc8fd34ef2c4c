package models

import (
	"time"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                    uint    `gorm:"primarykey"`
	SID                   string  `gorm:"column:sid;uniqueIndex;not null;size:50"`
	Email                 string  `gorm:"uniqueIndex;not null;size:255"`
	Name                  string  `gorm:"not null;size:100"`
	GoogleID              *string `gorm:"size:64;index"`
	Avatar                *string `gorm:"size:500"`
	Phone                 *string `gorm:"size:30"`
	PasswordHash          *string `gorm:"size:255"`
	Role                  string  `gorm:"not null;size:20;index"`
	Status                string  `gorm:"not null;size:20"`
	FreeListingsRemaining int     `gorm:"not null"`
	PaidListingsRemaining int     `gorm:"not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
