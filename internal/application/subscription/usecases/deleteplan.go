package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type DeletePlanCommand struct {
	PlanID uint
}

// DeletePlanUseCase removes a plan from the catalog. Plans with active
// subscriptions are protected: tenants must be moved off first.
type DeletePlanUseCase struct {
	planRepo subscription.PlanRepository
	subRepo  subscription.Repository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo subscription.PlanRepository, subRepo subscription.Repository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		subRepo:  subRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, cmd DeletePlanCommand) error {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return errors.NewNotFoundError("plan not found")
	}

	count, err := uc.subRepo.CountActiveByPlanID(ctx, plan.ID())
	if err != nil {
		uc.logger.Errorw("failed to count active subscriptions", "error", err, "plan_id", plan.ID())
		return fmt.Errorf("failed to count active subscriptions: %w", err)
	}
	if count > 0 {
		return errors.NewConflictError("plan has active subscriptions", fmt.Sprintf("%d active subscriptions reference this plan", count))
	}

	if err := uc.planRepo.Delete(ctx, plan.ID()); err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", plan.ID())
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	uc.logger.Infow("plan deleted", "plan_id", plan.ID(), "code", plan.Code())
	return nil
}
