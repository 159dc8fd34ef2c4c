package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhadat/marketplace/internal/application/admin/dto"
	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/user"
	uservo "github.com/nhadat/marketplace/internal/domain/user/valueobjects"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
	Role     string
	Status   string
	Search   string
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*dto.ListUsersResult, error) {
	uc.logger.Debugw("executing list users use case", "role", query.Role, "status", query.Status)

	if query.Role != "" && !authorization.UserRole(query.Role).IsValid() {
		return nil, errors.NewValidationError("Invalid filters", "role must be one of [user staff admin]")
	}
	if query.Status != "" {
		if _, err := uservo.ParseStatus(query.Status); err != nil {
			return nil, errors.NewValidationError("Invalid filters", "status must be one of [active locked]")
		}
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:     p.Page,
		PageSize: p.PageSize,
		Role:     query.Role,
		Status:   query.Status,
		Search:   strings.TrimSpace(query.Search),
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &dto.ListUsersResult{
		Items:    userdto.ToUserResponses(users),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
