package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type DeletePropertyCommand struct {
	PropertySID string
	CallerID    uint
	CallerRole  authorization.UserRole
}

// DeletePropertyUseCase removes a listing. The credit spent on it is not refunded.
type DeletePropertyUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewDeletePropertyUseCase(propertyRepo property.Repository, logger logger.Interface) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, cmd DeletePropertyCommand) error {
	uc.logger.Infow("executing delete property use case", "property_sid", cmd.PropertySID, "caller_id", cmd.CallerID)

	listing, err := loadOwnedProperty(ctx, uc.propertyRepo, cmd.PropertySID, cmd.CallerID, cmd.CallerRole, "delete")
	if err != nil {
		return err
	}

	if err := uc.propertyRepo.Delete(ctx, listing.ID()); err != nil {
		uc.logger.Errorw("failed to delete property", "property_id", listing.ID(), "error", err)
		return fmt.Errorf("failed to delete property: %w", err)
	}

	uc.logger.Infow("property deleted", "property_id", listing.ID())
	return nil
}
