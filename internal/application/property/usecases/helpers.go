package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/errors"
)

// loadOwnedProperty fetches a listing and applies the owner-or-admin gate.
func loadOwnedProperty(
	ctx context.Context,
	repo property.Repository,
	propertySID string,
	callerID uint,
	callerRole authorization.UserRole,
	verb string,
) (*property.Property, error) {
	p, err := repo.GetBySID(ctx, propertySID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	if !authorization.IsOwnerOrAdmin(callerID, callerRole, p.OwnerID()) {
		return nil, errors.NewForbiddenError(fmt.Sprintf("Cannot %s this property", verb))
	}
	return p, nil
}
