package dto

import (
	"time"

	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

type CreateOrderRequest struct {
	PackageSlug string `json:"package_slug" binding:"required"`
	Notes       string `json:"notes" binding:"max=500"`
}

type PackageResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Price          int64  `json:"price"`
	PriceLabel     string `json:"price_label"`
	ListingCredits int    `json:"listing_credits"`
	Description    string `json:"description"`
}

type OrderResponse struct {
	ID          string               `json:"id"`
	User        *userdto.UserSummary `json:"user,omitempty"`
	Package     *PackageResponse     `json:"package,omitempty"`
	Amount      int64                `json:"amount"`
	AmountLabel string               `json:"amount_label"`
	Status      string               `json:"status"`
	Notes       string               `json:"notes,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type ListOrdersResult struct {
	Items    []*OrderResponse
	Total    int64
	Page     int
	PageSize int
}

func ToPackageResponse(p *order.Package) *PackageResponse {
	if p == nil {
		return nil
	}
	return &PackageResponse{
		ID:             p.SID(),
		Name:           p.Name(),
		Slug:           p.Slug(),
		Price:          p.Price(),
		PriceLabel:     utils.FormatVND(p.Price()),
		ListingCredits: p.ListingCredits(),
		Description:    p.Description(),
	}
}

func ToPackageResponses(items []*order.Package) []*PackageResponse {
	out := make([]*PackageResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToPackageResponse(p))
	}
	return out
}

func ToOrderResponse(o *order.Order, pkg *PackageResponse, buyer *userdto.UserSummary) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:          o.SID(),
		User:        buyer,
		Package:     pkg,
		Amount:      o.Amount(),
		AmountLabel: utils.FormatVND(o.Amount()),
		Status:      o.Status().String(),
		Notes:       o.Notes(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}
