package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type VoidExpenseCommand struct {
	CondominiumID uint
	ExpenseID     uint
}

type VoidExpenseResult struct {
	Expense *expense.Expense
}

// VoidExpenseUseCase takes an expense out of fee calculation. Receipts
// already issued for the period are unaffected.
type VoidExpenseUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewVoidExpenseUseCase(expenseRepo expense.Repository, logger logger.Interface) *VoidExpenseUseCase {
	return &VoidExpenseUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *VoidExpenseUseCase) Execute(ctx context.Context, cmd VoidExpenseCommand) (*VoidExpenseResult, error) {
	exp, err := uc.expenseRepo.GetByID(ctx, cmd.ExpenseID)
	if err != nil {
		uc.logger.Errorw("failed to get expense", "error", err, "expense_id", cmd.ExpenseID)
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if exp == nil || exp.CondominiumID() != cmd.CondominiumID {
		return nil, errors.NewNotFoundError("expense not found")
	}

	exp.Void()

	if err := uc.expenseRepo.Update(ctx, exp); err != nil {
		uc.logger.Errorw("failed to void expense", "error", err, "expense_id", exp.ID())
		return nil, fmt.Errorf("failed to void expense: %w", err)
	}

	uc.logger.Infow("expense voided", "expense_id", exp.ID(), "condominium_id", exp.CondominiumID())

	return &VoidExpenseResult{Expense: exp}, nil
}
