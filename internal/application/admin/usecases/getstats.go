package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nhadat/marketplace/internal/application/admin/dto"
	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// GetStatsUseCase handles retrieving the admin dashboard snapshot.
type GetStatsUseCase struct {
	userRepo     user.Repository
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewGetStatsUseCase(userRepo user.Repository, propertyRepo property.Repository, log logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		logger:       log,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsResponse, error) {
	uc.logger.Debugw("fetching admin stats")

	var totalUsers, totalProperties, pendingProperties int64

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := uc.userRepo.Count(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count users", "error", err)
			return errors.NewInternalError("failed to count users")
		}
		totalUsers = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.propertyRepo.Count(gctx, nil)
		if err != nil {
			uc.logger.Errorw("failed to count properties", "error", err)
			return errors.NewInternalError("failed to count properties")
		}
		totalProperties = count
		return nil
	})

	g.Go(func() error {
		pending := vo.PropertyStatusPending
		count, err := uc.propertyRepo.Count(gctx, &pending)
		if err != nil {
			uc.logger.Errorw("failed to count pending properties", "error", err)
			return errors.NewInternalError("failed to count pending properties")
		}
		pendingProperties = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalUsers:        totalUsers,
		TotalProperties:   totalProperties,
		PendingProperties: pendingProperties,
	}, nil
}
