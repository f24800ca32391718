package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/shared/biztime"
	"github.com/edifai-io/edifai/internal/shared/config"
	"github.com/edifai-io/edifai/internal/shared/errors"
)

func condoWithMethod(t *testing.T, method condominium.CalculationMethod) *condominium.Condominium {
	t.Helper()
	settings := condominium.DefaultSettings()
	settings.CalculationMethod = method
	condo, err := condominium.NewCondominium("Los Robles", "Av. Principal 123", 10, settings)
	require.NoError(t, err)
	require.NoError(t, condo.SetID(20))
	return condo
}

func unitFixture(t *testing.T, id uint, areaM2, aliquot float64) *unit.Unit {
	t.Helper()
	u, err := unit.NewUnit(20, "A-10"+string(rune('0'+id)), unit.Specs{AreaM2: areaM2, AliquotPercentage: aliquot})
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func newFeesUseCase(
	condoRepo *mockCondominiumRepository,
	unitRepo *mockUnitRepository,
	expenseRepo *mockExpenseRepository,
	receiptRepo *mockReceiptRepository,
	cfg config.BillingConfig,
) *CalculateMonthlyFeesUseCase {
	return NewCalculateMonthlyFeesUseCase(condoRepo, unitRepo, expenseRepo, receiptRepo, &mockTxRunner{}, cfg, &mockLogger{})
}

func TestCalculateMonthlyFeesUseCase_Execute_EqualSplit(t *testing.T) {
	condo := condoWithMethod(t, condominium.MethodEqual)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	unitRepo := &mockUnitRepository{
		ListByCondominiumIDFunc: func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
			return []*unit.Unit{
				unitFixture(t, 1, 80, 25),
				unitFixture(t, 2, 80, 25),
				unitFixture(t, 3, 80, 25),
				unitFixture(t, 4, 80, 25),
			}, nil
		},
	}
	expenseRepo := &mockExpenseRepository{
		SumActiveInRangeFunc: func(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error) {
			return 1000, nil
		},
	}
	charges := map[uint]float64{}
	unitRepo.IncrementBalanceFunc = func(ctx context.Context, id uint, delta float64) error {
		charges[id] += delta
		return nil
	}
	var created []*receipt.Receipt
	receiptRepo := &mockReceiptRepository{
		CreateFunc: func(ctx context.Context, r *receipt.Receipt) error {
			created = append(created, r)
			return nil
		},
	}

	uc := newFeesUseCase(condoRepo, unitRepo, expenseRepo, receiptRepo, config.BillingConfig{ReceiptDueDays: 5})

	result, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
		CondominiumID: 20,
		BillingPeriod: "2026-08",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, result.UnitCount)
	assert.Equal(t, float64(1000), result.TotalExpenses)
	require.Len(t, created, 4)
	for _, r := range created {
		assert.Equal(t, float64(250), r.TotalAmount())
		assert.Equal(t, receipt.StatusPending, r.Status())
		require.Len(t, r.Breakdown(), 1)
		assert.Equal(t, "Gastos Comunes del Mes", r.Breakdown()[0].Concept)
		assert.Equal(t, "2026-08", r.BillingPeriod())
		// Due 5 days after issue.
		assert.InDelta(t, 5*24, r.DueDate().Sub(r.IssuedAt()).Hours(), 1)
	}
	for id := uint(1); id <= 4; id++ {
		assert.Equal(t, float64(250), charges[id])
	}
}

func TestCalculateMonthlyFeesUseCase_Execute_AreaProportional(t *testing.T) {
	condo := condoWithMethod(t, condominium.MethodArea)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	unitRepo := &mockUnitRepository{
		ListByCondominiumIDFunc: func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
			return []*unit.Unit{
				unitFixture(t, 1, 120, 60),
				unitFixture(t, 2, 80, 40),
			}, nil
		},
	}
	expenseRepo := &mockExpenseRepository{
		SumActiveInRangeFunc: func(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error) {
			return 500, nil
		},
	}
	var created []*receipt.Receipt
	receiptRepo := &mockReceiptRepository{
		CreateFunc: func(ctx context.Context, r *receipt.Receipt) error {
			created = append(created, r)
			return nil
		},
	}

	uc := newFeesUseCase(condoRepo, unitRepo, expenseRepo, receiptRepo, config.BillingConfig{ReceiptDueDays: 5})

	result, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
		CondominiumID: 20,
		BillingPeriod: "2026-08",
	})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.InDelta(t, 300, created[0].TotalAmount(), 1e-9)
	assert.InDelta(t, 200, created[1].TotalAmount(), 1e-9)
	assert.Equal(t, 2, result.UnitCount)
}

func TestCalculateMonthlyFeesUseCase_Execute_AliquotSumEnforced(t *testing.T) {
	condo := condoWithMethod(t, condominium.MethodArea)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	unitRepo := &mockUnitRepository{
		ListByCondominiumIDFunc: func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
			return []*unit.Unit{
				unitFixture(t, 1, 120, 60),
				unitFixture(t, 2, 80, 30),
			}, nil
		},
	}
	expenseRepo := &mockExpenseRepository{
		SumActiveInRangeFunc: func(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error) {
			return 500, nil
		},
	}

	uc := newFeesUseCase(condoRepo, unitRepo, expenseRepo, &mockReceiptRepository{}, config.BillingConfig{
		ReceiptDueDays:    5,
		EnforceAliquotSum: true,
	})

	result, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
		CondominiumID: 20,
		BillingPeriod: "2026-08",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCalculateMonthlyFeesUseCase_Execute_NoUnits(t *testing.T) {
	condo := condoWithMethod(t, condominium.MethodEqual)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}

	uc := newFeesUseCase(condoRepo, &mockUnitRepository{}, &mockExpenseRepository{}, &mockReceiptRepository{}, config.BillingConfig{})

	result, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
		CondominiumID: 20,
		BillingPeriod: "2026-08",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCalculateMonthlyFeesUseCase_Execute_PeriodAlreadyRun(t *testing.T) {
	condo := condoWithMethod(t, condominium.MethodEqual)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	unitRepo := &mockUnitRepository{
		ListByCondominiumIDFunc: func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
			return []*unit.Unit{unitFixture(t, 1, 80, 100)}, nil
		},
	}
	receiptRepo := &mockReceiptRepository{
		ExistsForUnitAndPeriodFunc: func(ctx context.Context, unitID uint, billingPeriod string) (bool, error) {
			return true, nil
		},
	}

	uc := newFeesUseCase(condoRepo, unitRepo, &mockExpenseRepository{}, receiptRepo, config.BillingConfig{})

	result, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
		CondominiumID: 20,
		BillingPeriod: "2026-08",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCalculateMonthlyFeesUseCase_Execute_InvalidPeriod(t *testing.T) {
	uc := newFeesUseCase(&mockCondominiumRepository{}, &mockUnitRepository{}, &mockExpenseRepository{}, &mockReceiptRepository{}, config.BillingConfig{})

	for _, period := range []string{"", "2026", "2026-13", "08-2026", "2026-8"} {
		result, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
			CondominiumID: 20,
			BillingPeriod: period,
		})
		assert.Nil(t, result, "period %q", period)
		assert.Error(t, err, "period %q", period)
	}
}

func TestCalculateMonthlyFeesUseCase_Execute_RollbackOnChargeFailure(t *testing.T) {
	condo := condoWithMethod(t, condominium.MethodEqual)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	unitRepo := &mockUnitRepository{
		ListByCondominiumIDFunc: func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
			return []*unit.Unit{unitFixture(t, 1, 80, 100)}, nil
		},
		IncrementBalanceFunc: func(ctx context.Context, id uint, delta float64) error {
			return assert.AnError
		},
	}
	expenseRepo := &mockExpenseRepository{
		SumActiveInRangeFunc: func(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error) {
			return 100, nil
		},
	}

	uc := newFeesUseCase(condoRepo, unitRepo, expenseRepo, &mockReceiptRepository{}, config.BillingConfig{})

	result, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
		CondominiumID: 20,
		BillingPeriod: "2026-08",
	})

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestCalculateMonthlyFeesUseCase_Execute_SumsExpensesByDateRange(t *testing.T) {
	condo := condoWithMethod(t, condominium.MethodEqual)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	unitRepo := &mockUnitRepository{
		ListByCondominiumIDFunc: func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
			return []*unit.Unit{unitFixture(t, 1, 80, 100)}, nil
		},
	}
	var gotFrom, gotTo time.Time
	expenseRepo := &mockExpenseRepository{
		SumActiveInRangeFunc: func(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error) {
			gotFrom, gotTo = from, to
			return 100, nil
		},
	}

	uc := newFeesUseCase(condoRepo, unitRepo, expenseRepo, &mockReceiptRepository{}, config.BillingConfig{})

	_, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
		CondominiumID: 20,
		BillingPeriod: "2026-02",
	})

	require.NoError(t, err)
	period, err := biztime.ParseBillingPeriod("2026-02")
	require.NoError(t, err)
	wantFrom, wantTo := period.Range()
	assert.Equal(t, wantFrom, gotFrom)
	assert.Equal(t, wantTo, gotTo)
}

func TestCalculateMonthlyFeesUseCase_Execute_LastUnitAbsorbsRemainder(t *testing.T) {
	condo := condoWithMethod(t, condominium.MethodEqual)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	unitRepo := &mockUnitRepository{
		ListByCondominiumIDFunc: func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
			return []*unit.Unit{
				unitFixture(t, 1, 80, 33),
				unitFixture(t, 2, 80, 33),
				unitFixture(t, 3, 80, 34),
			}, nil
		},
	}
	expenseRepo := &mockExpenseRepository{
		SumActiveInRangeFunc: func(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error) {
			return 100, nil
		},
	}
	var created []*receipt.Receipt
	receiptRepo := &mockReceiptRepository{
		CreateFunc: func(ctx context.Context, r *receipt.Receipt) error {
			created = append(created, r)
			return nil
		},
	}

	uc := newFeesUseCase(condoRepo, unitRepo, expenseRepo, receiptRepo, config.BillingConfig{})

	_, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
		CondominiumID: 20,
		BillingPeriod: "2026-08",
	})

	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.InDelta(t, 33.33, created[0].TotalAmount(), 1e-9)
	assert.InDelta(t, 33.33, created[1].TotalAmount(), 1e-9)
	assert.InDelta(t, 33.34, created[2].TotalAmount(), 1e-9)

	var sum float64
	for _, r := range created {
		sum += r.TotalAmount()
	}
	assert.InDelta(t, 100, sum, 1e-9)
}

func TestCalculateMonthlyFeesUseCase_Execute_NormalizesDriftedAliquots(t *testing.T) {
	condo := condoWithMethod(t, condominium.MethodArea)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	unitRepo := &mockUnitRepository{
		ListByCondominiumIDFunc: func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
			// Percentages sum to 60, not 100. With enforcement off the
			// split stays proportional over the recorded sum.
			return []*unit.Unit{
				unitFixture(t, 1, 120, 30),
				unitFixture(t, 2, 80, 30),
			}, nil
		},
	}
	expenseRepo := &mockExpenseRepository{
		SumActiveInRangeFunc: func(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error) {
			return 100, nil
		},
	}
	var created []*receipt.Receipt
	receiptRepo := &mockReceiptRepository{
		CreateFunc: func(ctx context.Context, r *receipt.Receipt) error {
			created = append(created, r)
			return nil
		},
	}

	uc := newFeesUseCase(condoRepo, unitRepo, expenseRepo, receiptRepo, config.BillingConfig{})

	_, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
		CondominiumID: 20,
		BillingPeriod: "2026-08",
	})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.InDelta(t, 50, created[0].TotalAmount(), 1e-9)
	assert.InDelta(t, 50, created[1].TotalAmount(), 1e-9)
}

func TestCalculateMonthlyFeesUseCase_Execute_NoExpensesRejected(t *testing.T) {
	condo := condoWithMethod(t, condominium.MethodEqual)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	unitRepo := &mockUnitRepository{
		ListByCondominiumIDFunc: func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
			return []*unit.Unit{unitFixture(t, 1, 80, 100)}, nil
		},
	}

	uc := newFeesUseCase(condoRepo, unitRepo, &mockExpenseRepository{}, &mockReceiptRepository{}, config.BillingConfig{})

	result, err := uc.Execute(context.Background(), CalculateMonthlyFeesCommand{
		CondominiumID: 20,
		BillingPeriod: "2026-08",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
