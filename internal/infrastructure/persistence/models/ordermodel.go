package models

import "time"

type PackageModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"column:sid;uniqueIndex;not null;size:50"`
	Name           string `gorm:"not null;size:100"`
	Slug           string `gorm:"uniqueIndex;not null;size:100"`
	Price          int64  `gorm:"not null"`
	ListingCredits int    `gorm:"not null"`
	Description    string `gorm:"type:text"`
	IsActive       bool   `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PackageModel) TableName() string {
	return "packages"
}

type OrderModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"column:sid;uniqueIndex;not null;size:50"`
	UserID    uint   `gorm:"not null;index:idx_order_status_user,priority:2"`
	PackageID uint   `gorm:"not null"`
	Amount    int64  `gorm:"not null"`
	Status    string `gorm:"not null;size:20;index:idx_order_status_user,priority:1"`
	MarkedBy  *uint
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
