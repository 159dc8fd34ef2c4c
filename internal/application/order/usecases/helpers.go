package usecases

import (
	"context"

	"github.com/nhadat/marketplace/internal/application/order/dto"
	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/shared/errors"
)

// packageLookup resolves each distinct package once per request.
type packageLookup struct {
	repo  order.PackageRepository
	cache map[uint]*dto.PackageResponse
}

func newPackageLookup(repo order.PackageRepository) *packageLookup {
	return &packageLookup{repo: repo, cache: map[uint]*dto.PackageResponse{}}
}

// get returns nil for packages that no longer exist.
func (l *packageLookup) get(ctx context.Context, id uint) (*dto.PackageResponse, error) {
	if p, ok := l.cache[id]; ok {
		return p, nil
	}
	pkg, err := l.repo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			l.cache[id] = nil
			return nil, nil
		}
		return nil, err
	}
	resp := dto.ToPackageResponse(pkg)
	l.cache[id] = resp
	return resp, nil
}
