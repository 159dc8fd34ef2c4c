package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/property/dto"
	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// ListMyPropertiesUseCase returns every listing the caller owns, newest first,
// regardless of status.
type ListMyPropertiesUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewListMyPropertiesUseCase(propertyRepo property.Repository, logger logger.Interface) *ListMyPropertiesUseCase {
	return &ListMyPropertiesUseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

func (uc *ListMyPropertiesUseCase) Execute(ctx context.Context, ownerID uint) ([]*dto.PropertyResponse, error) {
	items, err := uc.propertyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to list own properties", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return dto.ToPropertyResponses(items, nil), nil
}
