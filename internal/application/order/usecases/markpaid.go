package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/order/dto"
	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/db"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type MarkPaidCommand struct {
	OrderSID string
	StaffID  uint
}

// MarkPaidUseCase settles an order exactly once. The pending to paid flip is
// a conditional update and the credit grant runs in the same transaction, so
// only the call that wins the flip grants credits. Settling a paid order
// returns it unchanged.
type MarkPaidUseCase struct {
	txMgr       db.Transactor
	orderRepo   order.Repository
	packageRepo order.PackageRepository
	userRepo    user.Repository
	ledger      user.CreditLedger
	logger      logger.Interface
}

func NewMarkPaidUseCase(
	txMgr db.Transactor,
	orderRepo order.Repository,
	packageRepo order.PackageRepository,
	userRepo user.Repository,
	ledger user.CreditLedger,
	logger logger.Interface,
) *MarkPaidUseCase {
	return &MarkPaidUseCase{
		txMgr:       txMgr,
		orderRepo:   orderRepo,
		packageRepo: packageRepo,
		userRepo:    userRepo,
		ledger:      ledger,
		logger:      logger,
	}
}

func (uc *MarkPaidUseCase) Execute(ctx context.Context, cmd MarkPaidCommand) (*dto.OrderResponse, error) {
	uc.logger.Infow("executing mark paid use case", "order_sid", cmd.OrderSID, "staff_id", cmd.StaffID)

	var (
		settled *order.Order
		pkg     *order.Package
		buyer   *user.User
		granted bool
	)

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.GetBySID(txCtx, cmd.OrderSID)
		if err != nil {
			return err
		}
		if o.IsPaid() {
			settled = o
			return nil
		}
		if o.IsCancelled() {
			return errors.NewConflictError("Cancelled orders cannot be marked paid")
		}

		pkg, err = uc.packageRepo.GetByID(txCtx, o.PackageID())
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewNotFoundError("Package missing")
			}
			return err
		}
		buyer, err = uc.userRepo.GetByID(txCtx, o.UserID())
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewNotFoundError("User missing")
			}
			return err
		}

		won, err := uc.orderRepo.MarkPaidIfPending(txCtx, o.ID(), cmd.StaffID)
		if err != nil {
			return err
		}
		if won {
			if err := uc.ledger.GrantCredits(txCtx, buyer.ID(), pkg.ListingCredits()); err != nil {
				return err
			}
			granted = true
		}

		settled, err = uc.orderRepo.GetByID(txCtx, o.ID())
		if err != nil {
			return err
		}
		if settled.IsCancelled() {
			return errors.NewConflictError("Cancelled orders cannot be marked paid")
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			uc.logger.Warnw("order settlement refused", "order_sid", cmd.OrderSID, "error", err)
			return nil, err
		}
		uc.logger.Errorw("failed to settle order", "order_sid", cmd.OrderSID, "error", err)
		return nil, fmt.Errorf("failed to mark order paid: %w", err)
	}

	if granted {
		uc.logger.Infow("order settled",
			"order_id", settled.ID(),
			"buyer_id", buyer.ID(),
			"credits", pkg.ListingCredits(),
			"staff_id", cmd.StaffID,
		)
	} else {
		uc.logger.Infow("order already settled", "order_id", settled.ID())
		if pkg == nil {
			if p, err := uc.packageRepo.GetByID(ctx, settled.PackageID()); err == nil {
				pkg = p
			}
		}
		if buyer == nil {
			if u, err := uc.userRepo.GetByID(ctx, settled.UserID()); err == nil {
				buyer = u
			}
		}
	}

	return dto.ToOrderResponse(settled, dto.ToPackageResponse(pkg), userdto.ToUserSummary(buyer)), nil
}
