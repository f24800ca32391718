package expense

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrExpenseVoided   = errors.New("expense is voided")
	ErrNoActiveExpense = errors.New("no active expenses for billing period")
)
