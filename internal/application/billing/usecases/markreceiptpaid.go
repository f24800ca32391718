package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type MarkReceiptPaidCommand struct {
	CondominiumID uint
	ReceiptID     uint
}

type MarkReceiptPaidResult struct {
	Receipt *receipt.Receipt
}

// MarkReceiptPaidUseCase settles a receipt and credits the unit's balance
// in one transaction.
type MarkReceiptPaidUseCase struct {
	receiptRepo receipt.Repository
	unitRepo    unit.Repository
	txManager   TransactionRunner
	logger      logger.Interface
}

func NewMarkReceiptPaidUseCase(
	receiptRepo receipt.Repository,
	unitRepo unit.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *MarkReceiptPaidUseCase {
	return &MarkReceiptPaidUseCase{
		receiptRepo: receiptRepo,
		unitRepo:    unitRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *MarkReceiptPaidUseCase) Execute(ctx context.Context, cmd MarkReceiptPaidCommand) (*MarkReceiptPaidResult, error) {
	var rcpt *receipt.Receipt

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		rcpt, err = uc.receiptRepo.GetByID(txCtx, cmd.ReceiptID)
		if err != nil {
			return fmt.Errorf("failed to get receipt: %w", err)
		}
		if rcpt == nil || rcpt.CondominiumID() != cmd.CondominiumID {
			return errors.NewNotFoundError("receipt not found")
		}

		if err := rcpt.MarkPaid(); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.receiptRepo.Update(txCtx, rcpt); err != nil {
			return fmt.Errorf("failed to update receipt: %w", err)
		}

		if err := uc.unitRepo.IncrementBalance(txCtx, rcpt.UnitID(), -rcpt.TotalAmount()); err != nil {
			return fmt.Errorf("failed to credit unit balance: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("receipt payment rolled back", "error", err, "receipt_id", cmd.ReceiptID)
		return nil, err
	}

	uc.logger.Infow("receipt paid",
		"receipt_id", rcpt.ID(),
		"unit_id", rcpt.UnitID(),
		"amount", rcpt.TotalAmount(),
	)

	return &MarkReceiptPaidResult{Receipt: rcpt}, nil
}
