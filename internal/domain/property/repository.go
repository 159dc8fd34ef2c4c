package property

import (
	"context"

	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id uint) (*Property, error)
	GetBySID(ctx context.Context, sid string) (*Property, error)
	Update(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Property, int64, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*Property, error)
	Count(ctx context.Context, status *vo.PropertyStatus) (int64, error)
}

// ListFilter is the search query for listings. Location and Query are
// case-insensitive substring matches, the price bounds are inclusive.
type ListFilter struct {
	Status       vo.PropertyStatus
	Location     string
	PropertyType vo.PropertyType
	ListingType  vo.ListingType
	MinPrice     *float64
	MaxPrice     *float64
	Query        string
	Page         int
	PageSize     int
}
