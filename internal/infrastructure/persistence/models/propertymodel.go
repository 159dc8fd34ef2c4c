package models

import (
	"time"

	"gorm.io/datatypes"

	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
)

type PropertyModel struct {
	ID              uint                            `gorm:"primarykey"`
	SID             string                          `gorm:"column:sid;uniqueIndex;not null;size:50"`
	OwnerID         uint                            `gorm:"not null;index"`
	Title           string                          `gorm:"not null;size:200"`
	Description     string                          `gorm:"type:text;not null"`
	Price           float64                         `gorm:"not null;index:idx_property_search,priority:2"`
	PriceUnit       string                          `gorm:"not null;size:20"`
	ListingType     string                          `gorm:"not null;size:20"`
	Location        string                          `gorm:"not null;size:255;index:idx_property_search,priority:1"`
	PropertyType    string                          `gorm:"not null;size:20;index:idx_property_search,priority:3"`
	Area            float64                         `gorm:"not null"`
	Bedrooms        *int
	Bathrooms       *int
	Floors          *int
	Images          datatypes.JSONSlice[string]     `gorm:"type:json"`
	Metadata        datatypes.JSONType[vo.Metadata] `gorm:"type:json"`
	Status          string                          `gorm:"not null;size:20;index"`
	RejectionReason *string                         `gorm:"size:500"`
	ApprovedAt      *time.Time
	Version         int       `gorm:"not null;default:1"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (PropertyModel) TableName() string {
	return "properties"
}
