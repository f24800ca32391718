package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanID            uint
	Name              *string
	MonthlyPrice      *float64
	Currency          *string
	MaxUnits          *uint
	Features          []string
	AIFeaturesEnabled *bool
}

type UpdatePlanResult struct {
	Plan *subscription.Plan
}

// UpdatePlanUseCase edits a plan in place. The code is immutable; existing
// subscribers keep their plan reference and see the new terms.
type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*UpdatePlanResult, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	if cmd.Name != nil {
		if err := plan.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.MonthlyPrice != nil || cmd.Currency != nil {
		price := plan.MonthlyPrice()
		currency := plan.Currency()
		if cmd.MonthlyPrice != nil {
			price = *cmd.MonthlyPrice
		}
		if cmd.Currency != nil {
			currency = *cmd.Currency
		}
		if err := plan.UpdatePricing(price, currency); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.MaxUnits != nil {
		if err := plan.SetMaxUnits(*cmd.MaxUnits); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Features != nil || cmd.AIFeaturesEnabled != nil {
		features := plan.Features()
		if cmd.Features != nil {
			features = cmd.Features
		}
		aiEnabled := plan.AIFeaturesEnabled()
		if cmd.AIFeaturesEnabled != nil {
			aiEnabled = *cmd.AIFeaturesEnabled
		}
		plan.UpdateFeatures(features, aiEnabled)
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", plan.ID())
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_id", plan.ID(), "code", plan.Code())

	return &UpdatePlanResult{Plan: plan}, nil
}
