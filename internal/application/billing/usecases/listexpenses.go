package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/shared/biztime"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type ListExpensesCommand struct {
	CondominiumID uint
	// BillingPeriod restricts the listing to one calendar month when set.
	BillingPeriod string
	Type          *expense.Type
	Status        *expense.Status
	Page          int
	Limit         int
}

type ListExpensesResult struct {
	Expenses []*expense.Expense
	Total    int64
}

type ListExpensesUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewListExpensesUseCase(expenseRepo expense.Repository, logger logger.Interface) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *ListExpensesUseCase) Execute(ctx context.Context, cmd ListExpensesCommand) (*ListExpensesResult, error) {
	filter := expense.Filter{
		Type:   cmd.Type,
		Status: cmd.Status,
		Page:   cmd.Page,
		Limit:  cmd.Limit,
	}

	if cmd.BillingPeriod != "" {
		period, err := biztime.ParseBillingPeriod(cmd.BillingPeriod)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		from, to := period.Range()
		filter.From = &from
		filter.To = &to
	}

	expenses, total, err := uc.expenseRepo.ListByCondominiumID(ctx, cmd.CondominiumID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list expenses", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return &ListExpensesResult{Expenses: expenses, Total: total}, nil
}
