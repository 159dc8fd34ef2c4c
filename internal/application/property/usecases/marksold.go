package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/property/dto"
	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type MarkSoldCommand struct {
	PropertySID string
	CallerID    uint
	CallerRole  authorization.UserRole
}

// MarkSoldUseCase closes an approved listing.
type MarkSoldUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewMarkSoldUseCase(propertyRepo property.Repository, logger logger.Interface) *MarkSoldUseCase {
	return &MarkSoldUseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

func (uc *MarkSoldUseCase) Execute(ctx context.Context, cmd MarkSoldCommand) (*dto.PropertyResponse, error) {
	uc.logger.Infow("executing mark sold use case", "property_sid", cmd.PropertySID, "caller_id", cmd.CallerID)

	listing, err := loadOwnedProperty(ctx, uc.propertyRepo, cmd.PropertySID, cmd.CallerID, cmd.CallerRole, "update")
	if err != nil {
		return nil, err
	}

	if err := listing.MarkSold(); err != nil {
		return nil, err
	}

	if err := uc.propertyRepo.Update(ctx, listing); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to mark property sold", "property_id", listing.ID(), "error", err)
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return dto.ToPropertyResponse(listing, nil), nil
}
