package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhadat/marketplace/internal/application/order/dto"
	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type CreateOrderCommand struct {
	UserID      uint
	PackageSlug string
	Notes       string
}

// CreateOrderUseCase places a pending order for an active package. The
// amount is the package price at this moment; later price changes do not
// touch existing orders.
type CreateOrderUseCase struct {
	orderRepo   order.Repository
	packageRepo order.PackageRepository
	logger      logger.Interface
}

func NewCreateOrderUseCase(orderRepo order.Repository, packageRepo order.PackageRepository, logger logger.Interface) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:   orderRepo,
		packageRepo: packageRepo,
		logger:      logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*dto.OrderResponse, error) {
	uc.logger.Infow("executing create order use case", "user_id", cmd.UserID, "package_slug", cmd.PackageSlug)

	slug := strings.TrimSpace(strings.ToLower(cmd.PackageSlug))
	if slug == "" {
		return nil, errors.NewValidationError("package_slug is required")
	}

	pkg, err := uc.packageRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("Package not found")
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	o, err := order.NewOrder(cmd.UserID, pkg)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	o.SetNotes(strings.TrimSpace(cmd.Notes))

	if err := uc.orderRepo.Create(ctx, o); err != nil {
		uc.logger.Errorw("failed to create order", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	uc.logger.Infow("order created", "order_id", o.ID(), "sid", o.SID(), "amount", o.Amount())
	return dto.ToOrderResponse(o, dto.ToPackageResponse(pkg), nil), nil
}
