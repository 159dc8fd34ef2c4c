package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/domain/user"
	vo "github.com/nhadat/marketplace/internal/domain/user/valueobjects"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type SeedAdminCommand struct {
	Email    string
	Password string
	Name     string
}

// SeedAdminUseCase creates the default administrator once. An existing
// account with the configured email is left untouched.
type SeedAdminUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewSeedAdminUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *SeedAdminUseCase {
	return &SeedAdminUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute reports whether a new admin was created.
func (uc *SeedAdminUseCase) Execute(ctx context.Context, cmd SeedAdminCommand) (bool, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return false, fmt.Errorf("invalid admin email: %w", err)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		uc.logger.Debugw("admin already exists", "email", email.String())
		return false, nil
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := user.NewUser(email, cmd.Name)
	if err != nil {
		return false, fmt.Errorf("failed to build admin: %w", err)
	}
	admin.PromoteToAdmin(hash)

	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	uc.logger.Infow("default admin created", "email", email.String(), "user_id", admin.ID())
	return true, nil
}
