package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type ToggleTenantStatusCommand struct {
	CondominiumID uint
	// Activate reactivates the tenant when true, suspends it when false.
	Activate bool
}

type ToggleTenantStatusResult struct {
	AdminStatus        user.UserStatus
	SubscriptionStatus subscription.Status
}

// ToggleTenantStatusUseCase suspends or reactivates a tenant: the admin
// user is blocked or unblocked and every subscription row for the
// condominium moves to canceled or active in the same transaction.
type ToggleTenantStatusUseCase struct {
	condoRepo condominium.Repository
	userRepo  user.Repository
	subRepo   subscription.Repository
	txManager TransactionRunner
	cache     StatusCacheInvalidator
	logger    logger.Interface
}

func NewToggleTenantStatusUseCase(
	condoRepo condominium.Repository,
	userRepo user.Repository,
	subRepo subscription.Repository,
	txManager TransactionRunner,
	cache StatusCacheInvalidator,
	logger logger.Interface,
) *ToggleTenantStatusUseCase {
	return &ToggleTenantStatusUseCase{
		condoRepo: condoRepo,
		userRepo:  userRepo,
		subRepo:   subRepo,
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *ToggleTenantStatusUseCase) Execute(ctx context.Context, cmd ToggleTenantStatusCommand) (*ToggleTenantStatusResult, error) {
	condo, err := uc.condoRepo.GetByID(ctx, cmd.CondominiumID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("tenant not found")
	}

	subStatus := subscription.StatusCanceled
	if cmd.Activate {
		subStatus = subscription.StatusActive
	}

	var admin *user.User
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		admin, err = uc.userRepo.GetByID(txCtx, condo.AdminID())
		if err != nil {
			return fmt.Errorf("failed to get admin user: %w", err)
		}
		if admin == nil {
			return errors.NewNotFoundError("tenant admin not found")
		}

		// Both mutations are idempotent, so repeating a toggle is harmless.
		if cmd.Activate {
			admin.Activate()
		} else {
			admin.Block()
		}
		if err := uc.userRepo.Update(txCtx, admin); err != nil {
			return fmt.Errorf("failed to update admin user: %w", err)
		}

		if err := uc.subRepo.UpdateStatusByCondominiumID(txCtx, condo.ID(), subStatus); err != nil {
			return fmt.Errorf("failed to update subscription status: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("tenant status toggle rolled back", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, err
	}

	if uc.cache != nil {
		if cacheErr := uc.cache.Invalidate(ctx, condo.ID()); cacheErr != nil {
			uc.logger.Warnw("failed to invalidate subscription status cache", "error", cacheErr, "condominium_id", condo.ID())
		}
	}

	uc.logger.Infow("tenant status toggled",
		"condominium_id", condo.ID(),
		"admin_status", admin.Status(),
		"subscription_status", subStatus,
	)

	return &ToggleTenantStatusResult{
		AdminStatus:        admin.Status(),
		SubscriptionStatus: subStatus,
	}, nil
}
