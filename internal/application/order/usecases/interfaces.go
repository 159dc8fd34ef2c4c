package usecases

import (
	"context"

	"github.com/nhadat/marketplace/internal/application/order/dto"
)

// PackageCache holds the rendered active catalog. A miss returns (nil, false, nil).
type PackageCache interface {
	GetActive(ctx context.Context) ([]*dto.PackageResponse, bool, error)
	SetActive(ctx context.Context, packages []*dto.PackageResponse) error
	Invalidate(ctx context.Context) error
}
