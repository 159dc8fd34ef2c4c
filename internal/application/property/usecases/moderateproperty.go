package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/nhadat/marketplace/internal/application/property/dto"
	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/biztime"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/goroutine"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

type ModeratePropertyCommand struct {
	PropertySID string
	Status      string
	Reason      string
	ModeratorID uint
}

// ModeratePropertyUseCase approves or rejects a listing. The seller is
// notified by email after the new status is stored; a failed email is logged
// and never undoes the moderation.
type ModeratePropertyUseCase struct {
	propertyRepo property.Repository
	userRepo     user.Repository
	notifier     ModerationNotifier
	logger       logger.Interface
}

func NewModeratePropertyUseCase(
	propertyRepo property.Repository,
	userRepo user.Repository,
	notifier ModerationNotifier,
	logger logger.Interface,
) *ModeratePropertyUseCase {
	return &ModeratePropertyUseCase{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *ModeratePropertyUseCase) Execute(ctx context.Context, cmd ModeratePropertyCommand) (*dto.PropertyResponse, error) {
	uc.logger.Infow("executing moderate property use case",
		"property_sid", cmd.PropertySID,
		"status", cmd.Status,
		"moderator_id", cmd.ModeratorID,
	)

	target, _ := vo.ParsePropertyStatus(cmd.Status)
	action, ok := vo.ModerationAction(target)
	if !ok {
		return nil, errors.NewValidationError("Invalid moderation status", "status must be one of [approved rejected]")
	}

	listing, err := uc.propertyRepo.GetBySID(ctx, cmd.PropertySID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	decidedAt := biztime.NowUTC()
	switch action {
	case vo.ActionApprove:
		err = listing.Approve(decidedAt)
	case vo.ActionReject:
		err = listing.Reject(cmd.Reason)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.propertyRepo.Update(ctx, listing); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("property changed concurrently, moderation refused", "property_id", listing.ID())
			return nil, err
		}
		uc.logger.Errorw("failed to save moderation", "property_id", listing.ID(), "error", err)
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	uc.logger.Infow("property moderated", "property_id", listing.ID(), "status", listing.Status())
	uc.notifyOwner(listing, decidedAt)

	return dto.ToPropertyResponse(listing, nil), nil
}

func (uc *ModeratePropertyUseCase) notifyOwner(listing *property.Property, decidedAt time.Time) {
	if uc.notifier == nil {
		return
	}

	notice := ModerationNotice{
		Title:     listing.Title(),
		Status:    listing.Status(),
		DecidedAt: decidedAt,
	}
	if reason := listing.RejectionReason(); reason != nil {
		notice.Reason = *reason
	}
	ownerID := listing.OwnerID()
	propertyID := listing.ID()

	goroutine.Go(uc.logger, "moderation-notify", func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		owner, err := uc.userRepo.GetByID(ctx, ownerID)
		if err != nil {
			uc.logger.Warnw("moderation notice skipped, owner not loaded", "property_id", propertyID, "error", err)
			return
		}
		notice.To = owner.Email().String()
		notice.Name = owner.Name()

		if err := uc.notifier.NotifyModeration(ctx, notice); err != nil {
			uc.logger.Warnw("failed to send moderation notice", "property_id", propertyID, "to", notice.To, "error", err)
		}
	})
}
