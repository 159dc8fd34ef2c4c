package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/property/dto"
	"github.com/nhadat/marketplace/internal/domain/property"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/db"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type CreatePropertyCommand struct {
	OwnerID uint
	Details property.Details
}

// CreatePropertyUseCase posts a pending listing and consumes one credit in
// the same transaction: either both happen or neither does.
type CreatePropertyUseCase struct {
	txMgr        db.Transactor
	ledger       user.CreditLedger
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewCreatePropertyUseCase(
	txMgr db.Transactor,
	ledger user.CreditLedger,
	propertyRepo property.Repository,
	logger logger.Interface,
) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		txMgr:        txMgr,
		ledger:       ledger,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, cmd CreatePropertyCommand) (*dto.PropertyResponse, error) {
	uc.logger.Infow("executing create property use case", "owner_id", cmd.OwnerID, "title", cmd.Details.Title)

	if cmd.OwnerID == 0 {
		return nil, errors.NewUnauthorizedError("Not authenticated")
	}

	listing, err := property.NewProperty(cmd.OwnerID, cmd.Details)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	var source user.CreditSource
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var consumeErr error
		source, consumeErr = uc.ledger.ConsumeOneCredit(txCtx, cmd.OwnerID)
		if consumeErr != nil {
			return consumeErr
		}
		return uc.propertyRepo.Create(txCtx, listing)
	})
	if err != nil {
		if errors.IsAppError(err) {
			uc.logger.Warnw("property creation refused", "owner_id", cmd.OwnerID, "error", err)
			return nil, err
		}
		uc.logger.Errorw("failed to create property", "owner_id", cmd.OwnerID, "error", err)
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	uc.logger.Infow("property created",
		"property_id", listing.ID(),
		"sid", listing.SID(),
		"owner_id", cmd.OwnerID,
		"credit_source", source,
	)
	return dto.ToPropertyResponse(listing, nil), nil
}
