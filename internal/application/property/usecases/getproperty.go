package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/property/dto"
	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type GetPropertyQuery struct {
	PropertySID string
	CallerID    uint
	CallerRole  authorization.UserRole
}

// GetPropertyUseCase returns a listing detail with its owner and the
// description rendered to sanitized HTML. Listings that are not approved
// look absent to everyone except their owner and staff.
type GetPropertyUseCase struct {
	propertyRepo property.Repository
	userRepo     user.Repository
	renderer     DescriptionRenderer
	logger       logger.Interface
}

func NewGetPropertyUseCase(
	propertyRepo property.Repository,
	userRepo user.Repository,
	renderer DescriptionRenderer,
	logger logger.Interface,
) *GetPropertyUseCase {
	return &GetPropertyUseCase{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, query GetPropertyQuery) (*dto.PropertyResponse, error) {
	listing, err := uc.propertyRepo.GetBySID(ctx, query.PropertySID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("Property not found")
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	if !listing.IsVisibleTo(query.CallerID, query.CallerRole.IsStaffOrAdmin()) {
		return nil, errors.NewNotFoundError("Property not found")
	}

	var owner *userdto.UserSummary
	if u, err := uc.userRepo.GetByID(ctx, listing.OwnerID()); err == nil {
		owner = userdto.ToUserSummary(u)
	} else if !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	resp := dto.ToPropertyResponse(listing, owner)
	if uc.renderer != nil {
		html, err := uc.renderer.Render(listing.Details().Description)
		if err != nil {
			uc.logger.Warnw("failed to render description", "property_id", listing.ID(), "error", err)
		} else {
			resp.DescriptionHTML = html
		}
	}
	return resp, nil
}
