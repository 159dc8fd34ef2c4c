package order

import "context"

type PackageRepository interface {
	GetByID(ctx context.Context, id uint) (*Package, error)
	// GetActiveBySlug returns NotFound for unknown and inactive packages.
	GetActiveBySlug(ctx context.Context, slug string) (*Package, error)
	ListActive(ctx context.Context) ([]*Package, error)
	// Upsert inserts by slug or refreshes name, price, credits and description.
	Upsert(ctx context.Context, pkg *Package) error
}

type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetBySID(ctx context.Context, sid string) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	List(ctx context.Context, filter ListFilter) ([]*Order, int64, error)
	// MarkPaidIfPending flips pending to paid in one conditional update and
	// reports whether this call performed the transition.
	MarkPaidIfPending(ctx context.Context, id uint, markedBy uint) (bool, error)
}

type ListFilter struct {
	Status   Status
	UserID   uint
	Page     int
	PageSize int
}
