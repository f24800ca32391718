package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type GetTenantCommand struct {
	CondominiumID uint
}

type GetTenantResult struct {
	Tenant    TenantRow
	UnitCount int64
}

type GetTenantUseCase struct {
	condoRepo condominium.Repository
	userRepo  user.Repository
	subRepo   subscription.Repository
	planRepo  subscription.PlanRepository
	unitRepo  unit.Repository
	logger    logger.Interface
}

func NewGetTenantUseCase(
	condoRepo condominium.Repository,
	userRepo user.Repository,
	subRepo subscription.Repository,
	planRepo subscription.PlanRepository,
	unitRepo unit.Repository,
	logger logger.Interface,
) *GetTenantUseCase {
	return &GetTenantUseCase{
		condoRepo: condoRepo,
		userRepo:  userRepo,
		subRepo:   subRepo,
		planRepo:  planRepo,
		unitRepo:  unitRepo,
		logger:    logger,
	}
}

func (uc *GetTenantUseCase) Execute(ctx context.Context, cmd GetTenantCommand) (*GetTenantResult, error) {
	condo, err := uc.condoRepo.GetByID(ctx, cmd.CondominiumID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("tenant not found")
	}

	row := TenantRow{Condominium: condo}

	admin, err := uc.userRepo.GetByID(ctx, condo.AdminID())
	if err != nil {
		uc.logger.Warnw("failed to load tenant admin", "error", err, "condominium_id", condo.ID())
	} else {
		row.Admin = admin
	}

	sub, err := uc.subRepo.GetLatestByCondominiumID(ctx, condo.ID())
	if err != nil {
		uc.logger.Warnw("failed to load tenant subscription", "error", err, "condominium_id", condo.ID())
	} else if sub != nil {
		row.Subscription = sub
		plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
		if err != nil {
			uc.logger.Warnw("failed to load tenant plan", "error", err, "plan_id", sub.PlanID())
		} else {
			row.Plan = plan
		}
	}

	unitCount, err := uc.unitRepo.CountByCondominiumID(ctx, condo.ID())
	if err != nil {
		uc.logger.Warnw("failed to count units", "error", err, "condominium_id", condo.ID())
	}

	return &GetTenantResult{Tenant: row, UnitCount: unitCount}, nil
}
