package usecases

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/shared/biztime"
	"github.com/edifai-io/edifai/internal/shared/config"
	"github.com/edifai-io/edifai/internal/shared/constants"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

// feeConcept is the single line item on generated receipts.
const feeConcept = "Gastos Comunes del Mes"

// aliquotSumTolerance allows for rounding in recorded percentages.
const aliquotSumTolerance = 0.01

type CalculateMonthlyFeesCommand struct {
	CondominiumID uint
	BillingPeriod string
}

type CalculateMonthlyFeesResult struct {
	Receipts      []*receipt.Receipt
	TotalExpenses float64
	UnitCount     int
}

// CalculateMonthlyFeesUseCase runs the monthly apportionment: it totals the
// active expenses for the period, splits them across units according to the
// condominium's calculation method, and issues one receipt per unit. The
// whole run is one transaction; a period can only be run once.
type CalculateMonthlyFeesUseCase struct {
	condoRepo   condominium.Repository
	unitRepo    unit.Repository
	expenseRepo expense.Repository
	receiptRepo receipt.Repository
	txManager   TransactionRunner
	cfg         config.BillingConfig
	logger      logger.Interface
}

func NewCalculateMonthlyFeesUseCase(
	condoRepo condominium.Repository,
	unitRepo unit.Repository,
	expenseRepo expense.Repository,
	receiptRepo receipt.Repository,
	txManager TransactionRunner,
	cfg config.BillingConfig,
	logger logger.Interface,
) *CalculateMonthlyFeesUseCase {
	return &CalculateMonthlyFeesUseCase{
		condoRepo:   condoRepo,
		unitRepo:    unitRepo,
		expenseRepo: expenseRepo,
		receiptRepo: receiptRepo,
		txManager:   txManager,
		cfg:         cfg,
		logger:      logger,
	}
}

func (uc *CalculateMonthlyFeesUseCase) Execute(ctx context.Context, cmd CalculateMonthlyFeesCommand) (*CalculateMonthlyFeesResult, error) {
	parsed, err := biztime.ParseBillingPeriod(cmd.BillingPeriod)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	period := parsed.String()

	condo, err := uc.condoRepo.GetByID(ctx, cmd.CondominiumID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("condominium not found")
	}

	dueDays := uc.cfg.ReceiptDueDays
	if dueDays <= 0 {
		dueDays = constants.ReceiptDueDays
	}
	dueDate := time.Now().AddDate(0, 0, dueDays)

	var result *CalculateMonthlyFeesResult

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		units, err := uc.unitRepo.ListByCondominiumID(txCtx, condo.ID())
		if err != nil {
			return fmt.Errorf("failed to list units: %w", err)
		}
		if len(units) == 0 {
			return errors.NewValidationError("condominium has no units to bill")
		}

		// A prior run for the same period is a conflict. The unique index
		// on (unit_id, billing_period) is the backstop when two runs race.
		exists, err := uc.receiptRepo.ExistsForUnitAndPeriod(txCtx, units[0].ID(), period)
		if err != nil {
			return fmt.Errorf("failed to check existing receipts: %w", err)
		}
		if exists {
			return errors.NewConflictError("fees already calculated for billing period", period)
		}

		from, to := parsed.Range()
		total, err := uc.expenseRepo.SumActiveInRange(txCtx, condo.ID(), from, to)
		if err != nil {
			return fmt.Errorf("failed to sum expenses: %w", err)
		}
		if total <= 0 {
			return errors.NewValidationError("no active expenses registered for billing period", period)
		}

		amounts, err := uc.apportion(condo.Settings().CalculationMethod, total, units)
		if err != nil {
			return err
		}

		receipts := make([]*receipt.Receipt, 0, len(units))
		for i, u := range units {
			rcpt, err := receipt.NewReceipt(u.ID(), condo.ID(), period, amounts[i], []receipt.BreakdownLine{
				{Concept: feeConcept, Amount: amounts[i]},
			}, dueDate)
			if err != nil {
				return fmt.Errorf("failed to build receipt for unit %d: %w", u.ID(), err)
			}
			if err := uc.receiptRepo.Create(txCtx, rcpt); err != nil {
				if errors.IsDuplicateError(err) {
					return errors.NewConflictError("fees already calculated for billing period", period)
				}
				return fmt.Errorf("failed to create receipt for unit %d: %w", u.ID(), err)
			}
			if err := uc.unitRepo.IncrementBalance(txCtx, u.ID(), amounts[i]); err != nil {
				return fmt.Errorf("failed to charge unit %d: %w", u.ID(), err)
			}
			receipts = append(receipts, rcpt)
		}

		result = &CalculateMonthlyFeesResult{
			Receipts:      receipts,
			TotalExpenses: total,
			UnitCount:     len(units),
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("fee calculation rolled back", "error", err, "condominium_id", cmd.CondominiumID, "billing_period", period)
		return nil, err
	}

	uc.logger.Infow("monthly fees calculated",
		"condominium_id", condo.ID(),
		"billing_period", period,
		"total_expenses", result.TotalExpenses,
		"unit_count", result.UnitCount,
		"method", condo.Settings().CalculationMethod,
	)

	return result, nil
}

// apportion splits total across the units per the calculation method.
// Shares are rounded to cents; the last unit absorbs the rounding remainder
// so the issued receipts always sum to the expense total.
func (uc *CalculateMonthlyFeesUseCase) apportion(method condominium.CalculationMethod, total float64, units []*unit.Unit) ([]float64, error) {
	amounts := make([]float64, len(units))

	switch method {
	case condominium.MethodEqual:
		share := roundCents(total / float64(len(units)))
		for i := range units {
			amounts[i] = share
		}
	case condominium.MethodArea:
		var aliquotSum float64
		for _, u := range units {
			aliquotSum += u.Specs().AliquotPercentage
		}
		if uc.cfg.EnforceAliquotSum && math.Abs(aliquotSum-100) > aliquotSumTolerance {
			return nil, errors.NewValidationError("aliquot percentages do not sum to 100", fmt.Sprintf("current sum: %.4f", aliquotSum))
		}
		if aliquotSum <= 0 {
			return nil, errors.NewValidationError("aliquot percentages sum to zero")
		}
		// Dividing by the recorded sum rather than a literal 100 keeps the
		// split proportional even when the percentages drift.
		for i, u := range units {
			amounts[i] = roundCents(u.Specs().AliquotPercentage / aliquotSum * total)
		}
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown calculation method: %s", method))
	}

	var allocated float64
	for _, a := range amounts[:len(amounts)-1] {
		allocated += a
	}
	amounts[len(amounts)-1] = roundCents(total - allocated)

	return amounts, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
