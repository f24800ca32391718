package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type CreateExpenseCommand struct {
	CondominiumID uint
	Description   string
	Amount        float64
	Type          string
	Category      string
	// Date defaults to the current time when zero.
	Date         time.Time
	InvoiceURL   string
	RegisteredBy uint
}

type CreateExpenseResult struct {
	Expense *expense.Expense
}

type CreateExpenseUseCase struct {
	condoRepo   condominium.Repository
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewCreateExpenseUseCase(condoRepo condominium.Repository, expenseRepo expense.Repository, logger logger.Interface) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		condoRepo:   condoRepo,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *CreateExpenseUseCase) Execute(ctx context.Context, cmd CreateExpenseCommand) (*CreateExpenseResult, error) {
	condo, err := uc.condoRepo.GetByID(ctx, cmd.CondominiumID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("condominium not found")
	}

	date := cmd.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	exp, err := expense.NewExpense(condo.ID(), cmd.Description, cmd.Amount, expense.Type(cmd.Type), cmd.Category, date, cmd.RegisteredBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.InvoiceURL != "" {
		exp.AttachInvoice(cmd.InvoiceURL)
	}

	if err := uc.expenseRepo.Create(ctx, exp); err != nil {
		uc.logger.Errorw("failed to create expense", "error", err, "condominium_id", condo.ID())
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	uc.logger.Infow("expense registered",
		"expense_id", exp.ID(),
		"condominium_id", condo.ID(),
		"amount", exp.Amount(),
		"date", exp.Date(),
	)

	return &CreateExpenseResult{Expense: exp}, nil
}
