package dto

import (
	"math"
	"time"

	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

type PropertyResponse struct {
	ID              string               `json:"id"`
	Owner           *userdto.UserSummary `json:"owner,omitempty"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	DescriptionHTML string               `json:"description_html,omitempty"`
	Price           float64              `json:"price"`
	PriceUnit       string               `json:"price_unit"`
	PriceLabel      string               `json:"price_label"`
	ListingType     string               `json:"listing_type"`
	Location        string               `json:"location"`
	PropertyType    string               `json:"property_type"`
	Area            float64              `json:"area"`
	Bedrooms        *int                 `json:"bedrooms,omitempty"`
	Bathrooms       *int                 `json:"bathrooms,omitempty"`
	Floors          *int                 `json:"floors,omitempty"`
	Images          []string             `json:"images"`
	Metadata        vo.Metadata          `json:"metadata"`
	Status          string               `json:"status"`
	RejectionReason *string              `json:"rejection_reason"`
	ApprovedAt      *time.Time           `json:"approved_at"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type ListPropertiesResult struct {
	Items    []*PropertyResponse
	Total    int64
	Page     int
	PageSize int
}

func ToPropertyResponse(p *property.Property, owner *userdto.UserSummary) *PropertyResponse {
	if p == nil {
		return nil
	}
	d := p.Details()
	return &PropertyResponse{
		ID:              p.SID(),
		Owner:           owner,
		Title:           d.Title,
		Description:     d.Description,
		Price:           d.Price,
		PriceUnit:       string(d.PriceUnit),
		PriceLabel:      PriceLabel(d.Price, d.PriceUnit),
		ListingType:     string(d.ListingType),
		Location:        d.Location,
		PropertyType:    string(d.PropertyType),
		Area:            d.Area,
		Bedrooms:        d.Bedrooms,
		Bathrooms:       d.Bathrooms,
		Floors:          d.Floors,
		Images:          d.Images,
		Metadata:        d.Metadata,
		Status:          p.Status().String(),
		RejectionReason: p.RejectionReason(),
		ApprovedAt:      p.ApprovedAt(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

// ToPropertyResponses joins owner summaries by owner ID; owners missing from
// the map are left empty.
func ToPropertyResponses(items []*property.Property, owners map[uint]*userdto.UserSummary) []*PropertyResponse {
	out := make([]*PropertyResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToPropertyResponse(p, owners[p.OwnerID()]))
	}
	return out
}

// PriceLabel renders the listing price in dong, e.g. 2.5 billion -> "2.500.000.000 ₫".
func PriceLabel(price float64, unit vo.PriceUnit) string {
	return utils.FormatVND(int64(math.Round(price * unit.Multiplier())))
}
