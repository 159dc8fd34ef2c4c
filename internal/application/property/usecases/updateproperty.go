package usecases

import (
	"context"
	"fmt"
	"slices"

	"github.com/nhadat/marketplace/internal/application/property/dto"
	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// PropertyPatch holds the fields an edit supplies. Nil fields keep their
// current value; a nil Images slice keeps the current photos.
type PropertyPatch struct {
	Title        *string
	Description  *string
	Price        *float64
	PriceUnit    *string
	ListingType  *string
	Location     *string
	PropertyType *string
	Area         *float64
	Bedrooms     *int
	Bathrooms    *int
	Floors       *int
	Images       []string
	Amenities    []string
	Facing       *string
	Legal        *string
}

// ApplyTo merges the patch over d.
func (p PropertyPatch) ApplyTo(d property.Details) property.Details {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.PriceUnit != nil {
		d.PriceUnit = vo.PriceUnit(*p.PriceUnit)
	}
	if p.ListingType != nil {
		d.ListingType = vo.ListingType(*p.ListingType)
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.PropertyType != nil {
		d.PropertyType = vo.PropertyType(*p.PropertyType)
	}
	if p.Area != nil {
		d.Area = *p.Area
	}
	if p.Bedrooms != nil {
		d.Bedrooms = p.Bedrooms
	}
	if p.Bathrooms != nil {
		d.Bathrooms = p.Bathrooms
	}
	if p.Floors != nil {
		d.Floors = p.Floors
	}
	if p.Images != nil {
		d.Images = p.Images
	}
	if p.Amenities != nil {
		d.Metadata.Amenities = p.Amenities
	}
	if p.Facing != nil {
		d.Metadata.Facing = *p.Facing
	}
	if p.Legal != nil {
		d.Metadata.Legal = *p.Legal
	}
	return d
}

type UpdatePropertyCommand struct {
	PropertySID string
	CallerID    uint
	CallerRole  authorization.UserRole
	Patch       PropertyPatch
}

// UpdatePropertyUseCase edits a listing and sends it back to moderation.
// No additional credit is consumed. Photos dropped by the edit are removed
// from storage once the new version is saved.
type UpdatePropertyUseCase struct {
	propertyRepo property.Repository
	images       ImageRemover
	logger       logger.Interface
}

func NewUpdatePropertyUseCase(propertyRepo property.Repository, images ImageRemover, logger logger.Interface) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{
		propertyRepo: propertyRepo,
		images:       images,
		logger:       logger,
	}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, cmd UpdatePropertyCommand) (*dto.PropertyResponse, error) {
	uc.logger.Infow("executing update property use case", "property_sid", cmd.PropertySID, "caller_id", cmd.CallerID)

	listing, err := loadOwnedProperty(ctx, uc.propertyRepo, cmd.PropertySID, cmd.CallerID, cmd.CallerRole, "edit")
	if err != nil {
		return nil, err
	}

	previous := listing.Status()
	previousImages := listing.Details().Images
	if err := listing.Edit(cmd.Patch.ApplyTo(listing.Details())); err != nil {
		return nil, err
	}

	if err := uc.propertyRepo.Update(ctx, listing); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("property changed concurrently, edit refused", "property_id", listing.ID())
			return nil, err
		}
		uc.logger.Errorw("failed to update property", "property_id", listing.ID(), "error", err)
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	uc.logger.Infow("property updated and queued for review",
		"property_id", listing.ID(),
		"previous_status", previous,
	)
	uc.removeDropped(listing.ID(), previousImages, listing.Details().Images)
	return dto.ToPropertyResponse(listing, nil), nil
}

func (uc *UpdatePropertyUseCase) removeDropped(propertyID uint, before, after []string) {
	if uc.images == nil {
		return
	}
	for _, url := range before {
		if slices.Contains(after, url) {
			continue
		}
		if err := uc.images.Remove(url); err != nil {
			uc.logger.Warnw("failed to remove replaced image", "property_id", propertyID, "url", url, "error", err)
		}
	}
}
