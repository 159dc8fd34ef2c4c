package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	GetBySID(ctx context.Context, sid string) (*User, error)
	// GetByEmail returns nil, nil when no user has the address.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Update persists profile, role and status. Credit balances are written
	// only through CreditLedger.
	Update(ctx context.Context, user *User) error
	// UpdateIdentity writes only the external identity fields so a sign-in
	// never overwrites a concurrent role or status change.
	UpdateIdentity(ctx context.Context, user *User) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Count(ctx context.Context) (int64, error)
}

// ListFilter represents filtering and pagination options for user list
type ListFilter struct {
	Page     int
	PageSize int
	Role     string
	Status   string
	Search   string
}
