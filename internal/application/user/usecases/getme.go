package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// GetMeUseCase returns the caller's profile with current credit balances.
type GetMeUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetMeUseCase(userRepo user.Repository, logger logger.Interface) *GetMeUseCase {
	return &GetMeUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetMeUseCase) Execute(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	if userID == 0 {
		return nil, errors.NewUnauthorizedError("Not authenticated")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get current user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return dto.ToUserResponse(u), nil
}
