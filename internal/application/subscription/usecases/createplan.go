package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name              string
	Code              string
	MonthlyPrice      float64
	Currency          string
	MaxUnits          uint
	Features          []string
	AIFeaturesEnabled bool
}

type CreatePlanResult struct {
	Plan *subscription.Plan
}

type CreatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*CreatePlanResult, error) {
	exists, err := uc.planRepo.ExistsByCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to check plan code", "error", err, "code", cmd.Code)
		return nil, fmt.Errorf("failed to check plan code: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("plan code already exists")
	}

	plan, err := subscription.NewPlan(cmd.Name, cmd.Code, cmd.MonthlyPrice, cmd.Currency, cmd.MaxUnits, cmd.Features, cmd.AIFeaturesEnabled)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "code", cmd.Code)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("plan code already exists")
		}
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_id", plan.ID(), "code", plan.Code())

	return &CreatePlanResult{Plan: plan}, nil
}
