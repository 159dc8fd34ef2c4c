package usecases

import (
	"context"
	"fmt"

	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type ToggleUserLockCommand struct {
	UserSID string
	AdminID uint
}

// ToggleUserLockUseCase flips a user between active and locked. Locked
// users are refused by the session middleware on their next request.
type ToggleUserLockUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewToggleUserLockUseCase(userRepo user.Repository, logger logger.Interface) *ToggleUserLockUseCase {
	return &ToggleUserLockUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ToggleUserLockUseCase) Execute(ctx context.Context, cmd ToggleUserLockCommand) (*userdto.UserResponse, error) {
	uc.logger.Infow("executing toggle user lock use case", "user_sid", cmd.UserSID, "admin_id", cmd.AdminID)

	u, err := uc.userRepo.GetBySID(ctx, cmd.UserSID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if u.ID() == cmd.AdminID {
		return nil, errors.NewBadRequestError("Cannot lock yourself")
	}

	u.ToggleLock()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user status", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user status changed", "user_id", u.ID(), "status", u.Status(), "admin_id", cmd.AdminID)
	return userdto.ToUserResponse(u), nil
}
