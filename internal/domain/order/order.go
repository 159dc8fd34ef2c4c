package order

import (
	"fmt"
	"time"

	"github.com/nhadat/marketplace/internal/shared/biztime"
	"github.com/nhadat/marketplace/internal/shared/id"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusPaid || s == StatusCancelled
}

// Order is a purchase of one package. Amount is the package price captured
// when the order was placed.
type Order struct {
	id        uint
	sid       string
	userID    uint
	packageID uint
	amount    int64
	status    Status
	markedBy  *uint
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

// NewOrder creates a pending order priced from pkg at this instant.
func NewOrder(userID uint, pkg *Package) (*Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if pkg == nil || pkg.ID() == 0 {
		return nil, fmt.Errorf("package is required")
	}

	sid, err := id.NewSID(id.PrefixOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Order{
		sid:       sid,
		userID:    userID,
		packageID: pkg.ID(),
		amount:    pkg.Price(),
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

type OrderParams struct {
	ID        uint
	SID       string
	UserID    uint
	PackageID uint
	Amount    int64
	Status    string
	MarkedBy  *uint
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ReconstructOrder(p OrderParams) (*Order, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	status := Status(p.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", p.Status)
	}
	return &Order{
		id:        p.ID,
		sid:       p.SID,
		userID:    p.UserID,
		packageID: p.PackageID,
		amount:    p.Amount,
		status:    status,
		markedBy:  p.MarkedBy,
		notes:     p.Notes,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}, nil
}

func (o *Order) ID() uint             { return o.id }
func (o *Order) SID() string          { return o.sid }
func (o *Order) UserID() uint         { return o.userID }
func (o *Order) PackageID() uint      { return o.packageID }
func (o *Order) Amount() int64        { return o.amount }
func (o *Order) Status() Status       { return o.status }
func (o *Order) MarkedBy() *uint      { return o.markedBy }
func (o *Order) Notes() string        { return o.notes }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

func (o *Order) IsPaid() bool      { return o.status == StatusPaid }
func (o *Order) IsCancelled() bool { return o.status == StatusCancelled }

func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// SetNotes attaches a free-form buyer note.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}
