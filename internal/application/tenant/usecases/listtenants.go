package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type ListTenantsCommand struct {
	ResellerID *uint
	Page       int
	Limit      int
}

// TenantRow is one tenant as shown on the platform dashboard: the
// condominium plus its admin and current subscription state.
type TenantRow struct {
	Condominium  *condominium.Condominium
	Admin        *user.User
	Subscription *subscription.Subscription
	Plan         *subscription.Plan
}

type ListTenantsResult struct {
	Tenants []TenantRow
	Total   int64
}

type ListTenantsUseCase struct {
	condoRepo condominium.Repository
	userRepo  user.Repository
	subRepo   subscription.Repository
	planRepo  subscription.PlanRepository
	logger    logger.Interface
}

func NewListTenantsUseCase(
	condoRepo condominium.Repository,
	userRepo user.Repository,
	subRepo subscription.Repository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *ListTenantsUseCase {
	return &ListTenantsUseCase{
		condoRepo: condoRepo,
		userRepo:  userRepo,
		subRepo:   subRepo,
		planRepo:  planRepo,
		logger:    logger,
	}
}

func (uc *ListTenantsUseCase) Execute(ctx context.Context, cmd ListTenantsCommand) (*ListTenantsResult, error) {
	condos, total, err := uc.condoRepo.List(ctx, condominium.Filter{
		ResellerID: cmd.ResellerID,
		Page:       cmd.Page,
		Limit:      cmd.Limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list condominiums", "error", err)
		return nil, fmt.Errorf("failed to list condominiums: %w", err)
	}

	rows := make([]TenantRow, 0, len(condos))
	for _, condo := range condos {
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

		rows = append(rows, row)
	}

	return &ListTenantsResult{Tenants: rows, Total: total}, nil
}
