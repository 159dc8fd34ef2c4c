package property

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/shared/biztime"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/id"
)

// Details is the owner-editable content of a listing.
type Details struct {
	Title        string
	Description  string
	Price        float64
	PriceUnit    vo.PriceUnit
	ListingType  vo.ListingType
	Location     string
	PropertyType vo.PropertyType
	Area         float64
	Bedrooms     *int
	Bathrooms    *int
	Floors       *int
	Images       []string
	Metadata     vo.Metadata
}

// Normalize trims text fields and fills enum defaults.
func (d *Details) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Location = strings.TrimSpace(d.Location)
	if d.PriceUnit == "" {
		d.PriceUnit = vo.PriceUnitMillion
	}
	if d.ListingType == "" {
		d.ListingType = vo.ListingTypeSell
	}
	if d.PropertyType == "" {
		d.PropertyType = vo.PropertyTypeHouse
	}
	if d.Images == nil {
		d.Images = []string{}
	}
	if d.Metadata.Amenities == nil {
		d.Metadata.Amenities = []string{}
	}
}

// Validate checks required fields. Callers should Normalize first.
func (d *Details) Validate() error {
	var problems []string

	if utf8.RuneCountInString(d.Title) < constants.MinTitleLength {
		problems = append(problems, fmt.Sprintf("title must be at least %d characters long", constants.MinTitleLength))
	}
	if utf8.RuneCountInString(d.Description) < constants.MinDescriptionLength {
		problems = append(problems, fmt.Sprintf("description must be at least %d characters long", constants.MinDescriptionLength))
	}
	if d.Price <= 0 {
		problems = append(problems, "price must be greater than 0")
	}
	if d.Location == "" {
		problems = append(problems, "location is required")
	}
	if d.Area <= 0 {
		problems = append(problems, "area must be greater than 0")
	}
	if !d.PriceUnit.IsValid() {
		problems = append(problems, "priceUnit must be one of [million billion]")
	}
	if !d.ListingType.IsValid() {
		problems = append(problems, "listingType must be one of [sell rent]")
	}
	if !d.PropertyType.IsValid() {
		problems = append(problems, "propertyType must be one of [apartment house land villa other]")
	}
	counts := []struct {
		name  string
		value *int
	}{{"bedrooms", d.Bedrooms}, {"bathrooms", d.Bathrooms}, {"floors", d.Floors}}
	for _, c := range counts {
		if c.value != nil && *c.value < 0 {
			problems = append(problems, c.name+" cannot be negative")
		}
	}
	if len(d.Images) > constants.MaxImagesPerListing {
		problems = append(problems, fmt.Sprintf("at most %d images are allowed", constants.MaxImagesPerListing))
	}

	if len(problems) > 0 {
		return errors.NewValidationError(constants.ErrMsgValidationFailed, strings.Join(problems, "; "))
	}
	return nil
}

// Property is the listing aggregate. Status only changes through the
// transition table in valueobjects.
type Property struct {
	id              uint
	sid             string
	ownerID         uint
	details         Details
	status          vo.PropertyStatus
	rejectionReason *string
	approvedAt      *time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewProperty creates a pending listing for ownerID.
func NewProperty(ownerID uint, details Details) (*Property, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	details.Normalize()
	if err := details.Validate(); err != nil {
		return nil, err
	}

	sid, err := id.NewSID(id.PrefixProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to generate property ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Property{
		sid:       sid,
		ownerID:   ownerID,
		details:   details,
		status:    vo.PropertyStatusPending,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructParams carries persisted state into ReconstructProperty.
type ReconstructParams struct {
	ID              uint
	SID             string
	OwnerID         uint
	Details         Details
	Status          string
	RejectionReason *string
	ApprovedAt      *time.Time
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReconstructProperty reconstructs a property from persistence
func ReconstructProperty(p ReconstructParams) (*Property, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("property ID cannot be zero")
	}
	status, ok := vo.ParsePropertyStatus(p.Status)
	if !ok {
		return nil, fmt.Errorf("invalid property status: %s", p.Status)
	}

	return &Property{
		id:              p.ID,
		sid:             p.SID,
		ownerID:         p.OwnerID,
		details:         p.Details,
		status:          status,
		rejectionReason: p.RejectionReason,
		approvedAt:      p.ApprovedAt,
		version:         p.Version,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (p *Property) ID() uint                  { return p.id }
func (p *Property) SID() string               { return p.sid }
func (p *Property) OwnerID() uint             { return p.ownerID }
func (p *Property) Details() Details          { return p.details }
func (p *Property) Title() string             { return p.details.Title }
func (p *Property) Status() vo.PropertyStatus { return p.status }
func (p *Property) RejectionReason() *string  { return p.rejectionReason }
func (p *Property) ApprovedAt() *time.Time    { return p.approvedAt }
func (p *Property) CreatedAt() time.Time      { return p.createdAt }
func (p *Property) UpdatedAt() time.Time      { return p.updatedAt }

// Version increases with every status change; writes are conditional on the
// version that was loaded.
func (p *Property) Version() int { return p.version }

// SetID sets the property ID after persistence
func (p *Property) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("property ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("property ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Property) transition(action vo.Action) error {
	next, ok := p.status.Apply(action)
	if !ok {
		return errors.NewConflictError(
			fmt.Sprintf("cannot %s a listing with status %s", strings.ReplaceAll(string(action), "_", " "), p.status),
		)
	}
	p.status = next
	p.version++
	p.updatedAt = biztime.NowUTC()
	return nil
}

// Edit replaces the listing content and sends it back to moderation. Prior
// moderation results are cleared.
func (p *Property) Edit(details Details) error {
	details.Normalize()
	if err := details.Validate(); err != nil {
		return err
	}
	if err := p.transition(vo.ActionEdit); err != nil {
		return err
	}
	p.details = details
	p.approvedAt = nil
	p.rejectionReason = nil
	return nil
}

// Approve stamps approvedAt and clears any rejection reason.
func (p *Property) Approve(now time.Time) error {
	if err := p.transition(vo.ActionApprove); err != nil {
		return err
	}
	p.approvedAt = &now
	p.rejectionReason = nil
	return nil
}

// Reject stores reason, using the default text when empty, and clears approvedAt.
func (p *Property) Reject(reason string) error {
	if err := p.transition(vo.ActionReject); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = constants.DefaultRejectionReason
	}
	p.rejectionReason = &reason
	p.approvedAt = nil
	return nil
}

func (p *Property) MarkSold() error {
	return p.transition(vo.ActionMarkSold)
}

// IsVisibleTo reports whether a caller may view this listing's detail page.
// Approved listings are public; other statuses are limited to the owner and staff.
func (p *Property) IsVisibleTo(callerID uint, staff bool) bool {
	if p.status.IsApproved() || staff {
		return true
	}
	return callerID != 0 && callerID == p.ownerID
}
