package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type DeleteTenantCommand struct {
	CondominiumID uint
}

// DeleteTenantUseCase removes a tenant and everything hanging off it:
// subscriptions, the admin user, units, expenses, receipts, tickets, and
// finally the condominium itself, in one transaction.
type DeleteTenantUseCase struct {
	condoRepo   condominium.Repository
	userRepo    user.Repository
	subRepo     subscription.Repository
	unitRepo    unit.Repository
	expenseRepo expense.Repository
	receiptRepo receipt.Repository
	ticketRepo  ticket.Repository
	txManager   TransactionRunner
	cache       StatusCacheInvalidator
	logger      logger.Interface
}

func NewDeleteTenantUseCase(
	condoRepo condominium.Repository,
	userRepo user.Repository,
	subRepo subscription.Repository,
	unitRepo unit.Repository,
	expenseRepo expense.Repository,
	receiptRepo receipt.Repository,
	ticketRepo ticket.Repository,
	txManager TransactionRunner,
	cache StatusCacheInvalidator,
	logger logger.Interface,
) *DeleteTenantUseCase {
	return &DeleteTenantUseCase{
		condoRepo:   condoRepo,
		userRepo:    userRepo,
		subRepo:     subRepo,
		unitRepo:    unitRepo,
		expenseRepo: expenseRepo,
		receiptRepo: receiptRepo,
		ticketRepo:  ticketRepo,
		txManager:   txManager,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *DeleteTenantUseCase) Execute(ctx context.Context, cmd DeleteTenantCommand) error {
	condo, err := uc.condoRepo.GetByID(ctx, cmd.CondominiumID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err, "condominium_id", cmd.CondominiumID)
		return fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return errors.NewNotFoundError("tenant not found")
	}

	condoID := condo.ID()
	adminID := condo.AdminID()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Dependent rows first, condominium last, so a failure midway
		// leaves nothing orphaned after rollback.
		if err := uc.receiptRepo.DeleteByCondominiumID(txCtx, condoID); err != nil {
			return fmt.Errorf("failed to delete receipts: %w", err)
		}
		if err := uc.expenseRepo.DeleteByCondominiumID(txCtx, condoID); err != nil {
			return fmt.Errorf("failed to delete expenses: %w", err)
		}
		if err := uc.ticketRepo.DeleteByCondominiumID(txCtx, condoID); err != nil {
			return fmt.Errorf("failed to delete tickets: %w", err)
		}
		if err := uc.unitRepo.DeleteByCondominiumID(txCtx, condoID); err != nil {
			return fmt.Errorf("failed to delete units: %w", err)
		}
		if err := uc.subRepo.DeleteByCondominiumID(txCtx, condoID); err != nil {
			return fmt.Errorf("failed to delete subscriptions: %w", err)
		}
		// Hard delete so the admin's email can be reused by a future
		// tenant; a soft-deleted row would still hold the unique index.
		if err := uc.userRepo.HardDelete(txCtx, adminID); err != nil {
			return fmt.Errorf("failed to delete admin user: %w", err)
		}
		if err := uc.condoRepo.Delete(txCtx, condoID); err != nil {
			return fmt.Errorf("failed to delete condominium: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("tenant deletion rolled back", "error", err, "condominium_id", condoID)
		return err
	}

	if uc.cache != nil {
		if cacheErr := uc.cache.Invalidate(ctx, condoID); cacheErr != nil {
			uc.logger.Warnw("failed to invalidate subscription status cache", "error", cacheErr, "condominium_id", condoID)
		}
	}

	uc.logger.Infow("tenant deleted", "condominium_id", condoID, "admin_user_id", adminID)
	return nil
}
