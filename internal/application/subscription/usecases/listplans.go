package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type ListPlansResult struct {
	Plans []*subscription.Plan
}

type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) (*ListPlansResult, error) {
	plans, err := uc.planRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return &ListPlansResult{Plans: plans}, nil
}

type GetPlanCommand struct {
	PlanID uint
}

type GetPlanResult struct {
	Plan *subscription.Plan
	// ActiveSubscriptions counts the tenants currently on this plan.
	ActiveSubscriptions int64
}

type GetPlanUseCase struct {
	planRepo subscription.PlanRepository
	subRepo  subscription.Repository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo subscription.PlanRepository, subRepo subscription.Repository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		subRepo:  subRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, cmd GetPlanCommand) (*GetPlanResult, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	count, err := uc.subRepo.CountActiveByPlanID(ctx, plan.ID())
	if err != nil {
		uc.logger.Warnw("failed to count active subscriptions", "error", err, "plan_id", plan.ID())
	}

	return &GetPlanResult{Plan: plan, ActiveSubscriptions: count}, nil
}
