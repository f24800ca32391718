package usecases

import (
	"context"
	"time"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type mockCondominiumRepository struct {
	CreateFunc  func(ctx context.Context, c *condominium.Condominium) error
	GetByIDFunc func(ctx context.Context, id uint) (*condominium.Condominium, error)
	UpdateFunc  func(ctx context.Context, c *condominium.Condominium) error
	DeleteFunc  func(ctx context.Context, id uint) error
	ListFunc    func(ctx context.Context, filter condominium.Filter) ([]*condominium.Condominium, int64, error)
}

func (m *mockCondominiumRepository) Create(ctx context.Context, c *condominium.Condominium) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCondominiumRepository) GetByID(ctx context.Context, id uint) (*condominium.Condominium, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCondominiumRepository) Update(ctx context.Context, c *condominium.Condominium) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCondominiumRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCondominiumRepository) List(ctx context.Context, filter condominium.Filter) ([]*condominium.Condominium, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockUnitRepository struct {
	CreateFunc                func(ctx context.Context, u *unit.Unit) error
	GetByIDFunc               func(ctx context.Context, id uint) (*unit.Unit, error)
	ListByCondominiumIDFunc   func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error)
	CountByCondominiumIDFunc  func(ctx context.Context, condominiumID uint) (int64, error)
	UpdateFunc                func(ctx context.Context, u *unit.Unit) error
	IncrementBalanceFunc      func(ctx context.Context, id uint, delta float64) error
	DeleteFunc                func(ctx context.Context, id uint) error
	DeleteByCondominiumIDFunc func(ctx context.Context, condominiumID uint) error
}

func (m *mockUnitRepository) Create(ctx context.Context, u *unit.Unit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUnitRepository) GetByID(ctx context.Context, id uint) (*unit.Unit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUnitRepository) ListByCondominiumID(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
	if m.ListByCondominiumIDFunc != nil {
		return m.ListByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil, nil
}

func (m *mockUnitRepository) CountByCondominiumID(ctx context.Context, condominiumID uint) (int64, error) {
	if m.CountByCondominiumIDFunc != nil {
		return m.CountByCondominiumIDFunc(ctx, condominiumID)
	}
	return 0, nil
}

func (m *mockUnitRepository) Update(ctx context.Context, u *unit.Unit) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUnitRepository) IncrementBalance(ctx context.Context, id uint, delta float64) error {
	if m.IncrementBalanceFunc != nil {
		return m.IncrementBalanceFunc(ctx, id, delta)
	}
	return nil
}

func (m *mockUnitRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUnitRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	if m.DeleteByCondominiumIDFunc != nil {
		return m.DeleteByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil
}

type mockExpenseRepository struct {
	CreateFunc                func(ctx context.Context, e *expense.Expense) error
	GetByIDFunc               func(ctx context.Context, id uint) (*expense.Expense, error)
	ListByCondominiumIDFunc   func(ctx context.Context, condominiumID uint, filter expense.Filter) ([]*expense.Expense, int64, error)
	SumActiveInRangeFunc      func(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error)
	UpdateFunc                func(ctx context.Context, e *expense.Expense) error
	DeleteByCondominiumIDFunc func(ctx context.Context, condominiumID uint) error
}

func (m *mockExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockExpenseRepository) GetByID(ctx context.Context, id uint) (*expense.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockExpenseRepository) ListByCondominiumID(ctx context.Context, condominiumID uint, filter expense.Filter) ([]*expense.Expense, int64, error) {
	if m.ListByCondominiumIDFunc != nil {
		return m.ListByCondominiumIDFunc(ctx, condominiumID, filter)
	}
	return nil, 0, nil
}

func (m *mockExpenseRepository) SumActiveInRange(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error) {
	if m.SumActiveInRangeFunc != nil {
		return m.SumActiveInRangeFunc(ctx, condominiumID, from, to)
	}
	return 0, nil
}

func (m *mockExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockExpenseRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	if m.DeleteByCondominiumIDFunc != nil {
		return m.DeleteByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil
}

type mockReceiptRepository struct {
	CreateFunc                 func(ctx context.Context, r *receipt.Receipt) error
	GetByIDFunc                func(ctx context.Context, id uint) (*receipt.Receipt, error)
	ListByCondominiumIDFunc    func(ctx context.Context, condominiumID uint, filter receipt.Filter) ([]*receipt.Receipt, int64, error)
	ExistsForUnitAndPeriodFunc func(ctx context.Context, unitID uint, billingPeriod string) (bool, error)
	UpdateFunc                 func(ctx context.Context, r *receipt.Receipt) error
	DeleteByCondominiumIDFunc  func(ctx context.Context, condominiumID uint) error
}

func (m *mockReceiptRepository) Create(ctx context.Context, r *receipt.Receipt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockReceiptRepository) GetByID(ctx context.Context, id uint) (*receipt.Receipt, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReceiptRepository) ListByCondominiumID(ctx context.Context, condominiumID uint, filter receipt.Filter) ([]*receipt.Receipt, int64, error) {
	if m.ListByCondominiumIDFunc != nil {
		return m.ListByCondominiumIDFunc(ctx, condominiumID, filter)
	}
	return nil, 0, nil
}

func (m *mockReceiptRepository) ExistsForUnitAndPeriod(ctx context.Context, unitID uint, billingPeriod string) (bool, error) {
	if m.ExistsForUnitAndPeriodFunc != nil {
		return m.ExistsForUnitAndPeriodFunc(ctx, unitID, billingPeriod)
	}
	return false, nil
}

func (m *mockReceiptRepository) Update(ctx context.Context, r *receipt.Receipt) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReceiptRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	if m.DeleteByCondominiumIDFunc != nil {
		return m.DeleteByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil
}

type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
