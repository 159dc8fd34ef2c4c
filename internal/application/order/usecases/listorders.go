package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/order/dto"
	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

// ListMyOrdersUseCase returns the caller's orders, newest first.
type ListMyOrdersUseCase struct {
	orderRepo   order.Repository
	packageRepo order.PackageRepository
	logger      logger.Interface
}

func NewListMyOrdersUseCase(orderRepo order.Repository, packageRepo order.PackageRepository, logger logger.Interface) *ListMyOrdersUseCase {
	return &ListMyOrdersUseCase{
		orderRepo:   orderRepo,
		packageRepo: packageRepo,
		logger:      logger,
	}
}

func (uc *ListMyOrdersUseCase) Execute(ctx context.Context, userID uint) ([]*dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list user orders", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	packages := newPackageLookup(uc.packageRepo)
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		pkg, err := packages.get(ctx, o.PackageID())
		if err != nil {
			return nil, fmt.Errorf("failed to load package: %w", err)
		}
		out = append(out, dto.ToOrderResponse(o, pkg, nil))
	}
	return out, nil
}

type ListOrdersQuery struct {
	Status   string
	Page     int
	PageSize int
}

// ListOrdersUseCase is the back-office order queue.
type ListOrdersUseCase struct {
	orderRepo   order.Repository
	packageRepo order.PackageRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewListOrdersUseCase(
	orderRepo order.Repository,
	packageRepo order.PackageRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo:   orderRepo,
		packageRepo: packageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (*dto.ListOrdersResult, error) {
	uc.logger.Debugw("executing list orders use case", "status", query.Status)

	status := order.Status(query.Status)
	if status != "" && !status.IsValid() {
		return nil, errors.NewValidationError("Invalid filters", "status must be one of [pending paid cancelled]")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	orders, total, err := uc.orderRepo.List(ctx, order.ListFilter{
		Status:   status,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	buyerIDs := make([]uint, 0, len(orders))
	seen := map[uint]bool{}
	for _, o := range orders {
		if !seen[o.UserID()] {
			seen[o.UserID()] = true
			buyerIDs = append(buyerIDs, o.UserID())
		}
	}
	buyers := map[uint]*userdto.UserSummary{}
	if len(buyerIDs) > 0 {
		users, err := uc.userRepo.GetByIDs(ctx, buyerIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load buyers: %w", err)
		}
		buyers = userdto.SummariesByID(users)
	}

	packages := newPackageLookup(uc.packageRepo)
	items := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		pkg, err := packages.get(ctx, o.PackageID())
		if err != nil {
			return nil, fmt.Errorf("failed to load package: %w", err)
		}
		items = append(items, dto.ToOrderResponse(o, pkg, buyers[o.UserID()]))
	}

	return &dto.ListOrdersResult{
		Items:    items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
