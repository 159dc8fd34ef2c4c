package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/nhadat/marketplace/internal/shared/biztime"
	"github.com/nhadat/marketplace/internal/shared/id"
)

// Package is a purchasable bundle of paid listing credits.
type Package struct {
	id             uint
	sid            string
	name           string
	slug           string
	price          int64
	listingCredits int
	description    string
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPackage(name, slug string, price int64, listingCredits int, description string) (*Package, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, fmt.Errorf("package slug is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("package price cannot be negative")
	}
	if listingCredits <= 0 {
		return nil, fmt.Errorf("package must grant at least one listing credit")
	}

	sid, err := id.NewSID(id.PrefixPackage)
	if err != nil {
		return nil, fmt.Errorf("failed to generate package ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Package{
		sid:            sid,
		name:           strings.TrimSpace(name),
		slug:           slug,
		price:          price,
		listingCredits: listingCredits,
		description:    description,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

type PackageParams struct {
	ID             uint
	SID            string
	Name           string
	Slug           string
	Price          int64
	ListingCredits int
	Description    string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructPackage(p PackageParams) (*Package, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("package ID cannot be zero")
	}
	return &Package{
		id:             p.ID,
		sid:            p.SID,
		name:           p.Name,
		slug:           p.Slug,
		price:          p.Price,
		listingCredits: p.ListingCredits,
		description:    p.Description,
		isActive:       p.IsActive,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

func (p *Package) ID() uint             { return p.id }
func (p *Package) SID() string          { return p.sid }
func (p *Package) Name() string         { return p.name }
func (p *Package) Slug() string         { return p.slug }
func (p *Package) Price() int64         { return p.price }
func (p *Package) ListingCredits() int  { return p.listingCredits }
func (p *Package) Description() string  { return p.description }
func (p *Package) IsActive() bool       { return p.isActive }
func (p *Package) CreatedAt() time.Time { return p.createdAt }
func (p *Package) UpdatedAt() time.Time { return p.updatedAt }

func (p *Package) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("package ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("package ID cannot be zero")
	}
	p.id = id
	return nil
}
