package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/domain/user"
	vo "github.com/nhadat/marketplace/internal/domain/user/valueobjects"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type SyncUserResult struct {
	User      *user.User
	IsNewUser bool
}

// SyncUserUseCase upserts a user by email from a verified external identity.
// Defaults are applied only on first creation; identity data is refreshed on
// every sign-in.
type SyncUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSyncUserUseCase(userRepo user.Repository, logger logger.Interface) *SyncUserUseCase {
	return &SyncUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SyncUserUseCase) Execute(ctx context.Context, info *OAuthUserInfo) (*SyncUserResult, error) {
	if info == nil {
		return nil, errors.NewUnauthorizedError("invalid credential")
	}
	uc.logger.Infow("executing sync user use case", "email", info.Email)

	email, err := vo.NewEmail(info.Email)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid credential", err.Error())
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to look up user by email", "email", email.String(), "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return uc.refresh(ctx, existing, info)
	}

	newUser, err := user.NewUser(email, info.Name)
	if err != nil {
		return nil, errors.NewValidationError("invalid user data", err.Error())
	}
	newUser.LinkIdentity(info.ProviderID, info.Picture)

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to create user", "email", email.String(), "error", err)
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		// A concurrent sign-in created the row first.
		existing, err = uc.userRepo.GetByEmail(ctx, email.String())
		if err != nil || existing == nil {
			return nil, fmt.Errorf("failed to load concurrently created user: %w", err)
		}
		return uc.refresh(ctx, existing, info)
	}

	uc.logger.Infow("user created from external identity", "user_id", newUser.ID(), "sid", newUser.SID())
	return &SyncUserResult{User: newUser, IsNewUser: true}, nil
}

func (uc *SyncUserUseCase) refresh(ctx context.Context, u *user.User, info *OAuthUserInfo) (*SyncUserResult, error) {
	u.LinkIdentity(info.ProviderID, info.Picture)
	if err := uc.userRepo.UpdateIdentity(ctx, u); err != nil {
		uc.logger.Errorw("failed to refresh user identity", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &SyncUserResult{User: u}, nil
}
