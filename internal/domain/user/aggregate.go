package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/nhadat/marketplace/internal/domain/user/valueobjects"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/biztime"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/id"
)

// User is the account aggregate. Credit balances live here but are only
// changed through CreditLedger so that concurrent listings cannot overspend.
type User struct {
	id                    uint
	sid                   string
	email                 *vo.Email
	name                  string
	googleID              string
	avatar                string
	phone                 string
	passwordHash          *string
	role                  authorization.UserRole
	status                vo.Status
	freeListingsRemaining int
	paidListingsRemaining int
	createdAt             time.Time
	updatedAt             time.Time
}

// NewUser creates an active user with the default free listing allowance.
// An empty name falls back to the email local part.
func NewUser(email *vo.Email, name string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = email.LocalPart()
	}

	sid, err := id.NewSID(id.PrefixUser)
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	now := biztime.NowUTC()
	return &User{
		sid:                   sid,
		email:                 email,
		name:                  name,
		role:                  authorization.RoleUser,
		status:                vo.StatusActive,
		freeListingsRemaining: constants.DefaultFreeListings,
		createdAt:             now,
		updatedAt:             now,
	}, nil
}

// ReconstructParams carries persisted state into ReconstructUser.
type ReconstructParams struct {
	ID                    uint
	SID                   string
	Email                 string
	Name                  string
	GoogleID              string
	Avatar                string
	Phone                 string
	PasswordHash          *string
	Role                  string
	Status                string
	FreeListingsRemaining int
	PaidListingsRemaining int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(p ReconstructParams) (*User, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	email, err := vo.NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	status, err := vo.ParseStatus(p.Status)
	if err != nil {
		return nil, err
	}

	return &User{
		id:                    p.ID,
		sid:                   p.SID,
		email:                 email,
		name:                  p.Name,
		googleID:              p.GoogleID,
		avatar:                p.Avatar,
		phone:                 p.Phone,
		passwordHash:          p.PasswordHash,
		role:                  authorization.ParseUserRole(p.Role),
		status:                status,
		freeListingsRemaining: p.FreeListingsRemaining,
		paidListingsRemaining: p.PaidListingsRemaining,
		createdAt:             p.CreatedAt,
		updatedAt:             p.UpdatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) SID() string                  { return u.sid }
func (u *User) Email() *vo.Email             { return u.email }
func (u *User) Name() string                 { return u.name }
func (u *User) GoogleID() string             { return u.googleID }
func (u *User) Avatar() string               { return u.avatar }
func (u *User) Phone() string                { return u.phone }
func (u *User) PasswordHash() *string        { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) Status() vo.Status            { return u.status }
func (u *User) FreeListingsRemaining() int   { return u.freeListingsRemaining }
func (u *User) PaidListingsRemaining() int   { return u.paidListingsRemaining }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

// SetID sets the user ID after persistence
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsActive() bool {
	return u.status.IsActive()
}

func (u *User) IsLocked() bool {
	return u.status.IsLocked()
}

// HasCredits reports whether at least one free or paid listing slot remains.
func (u *User) HasCredits() bool {
	return u.freeListingsRemaining > 0 || u.paidListingsRemaining > 0
}

// LinkIdentity refreshes the external identity data on every sign-in.
func (u *User) LinkIdentity(googleID, avatar string) {
	if googleID != "" {
		u.googleID = googleID
	}
	if avatar != "" {
		u.avatar = avatar
	}
	u.updatedAt = biztime.NowUTC()
}

// PromoteToAdmin turns a fresh account into the seeded administrator.
func (u *User) PromoteToAdmin(passwordHash string) {
	u.role = authorization.RoleAdmin
	u.freeListingsRemaining = 0
	u.paidListingsRemaining = constants.AdminPaidListings
	u.passwordHash = &passwordHash
	u.updatedAt = biztime.NowUTC()
}

// ToggleLock flips active and locked.
func (u *User) ToggleLock() {
	if u.status.IsLocked() {
		u.status = vo.StatusActive
	} else {
		u.status = vo.StatusLocked
	}
	u.updatedAt = biztime.NowUTC()
}
