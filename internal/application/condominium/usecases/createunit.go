package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type CreateUnitCommand struct {
	CondominiumID     uint
	Identifier        string
	AreaM2            float64
	AliquotPercentage float64
	OwnerID           *uint
}

type CreateUnitResult struct {
	Unit *unit.Unit
}

// CreateUnitUseCase registers a unit, enforcing the unit capacity sold with
// the tenant's plan.
type CreateUnitUseCase struct {
	condoRepo condominium.Repository
	unitRepo  unit.Repository
	subRepo   subscription.Repository
	planRepo  subscription.PlanRepository
	logger    logger.Interface
}

func NewCreateUnitUseCase(
	condoRepo condominium.Repository,
	unitRepo unit.Repository,
	subRepo subscription.Repository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *CreateUnitUseCase {
	return &CreateUnitUseCase{
		condoRepo: condoRepo,
		unitRepo:  unitRepo,
		subRepo:   subRepo,
		planRepo:  planRepo,
		logger:    logger,
	}
}

func (uc *CreateUnitUseCase) Execute(ctx context.Context, cmd CreateUnitCommand) (*CreateUnitResult, error) {
	condo, err := uc.condoRepo.GetByID(ctx, cmd.CondominiumID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("condominium not found")
	}

	if err := uc.checkCapacity(ctx, condo.ID()); err != nil {
		return nil, err
	}

	u, err := unit.NewUnit(condo.ID(), cmd.Identifier, unit.Specs{
		AreaM2:            cmd.AreaM2,
		AliquotPercentage: cmd.AliquotPercentage,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.OwnerID != nil {
		if err := u.AssignOwner(*cmd.OwnerID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.unitRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create unit", "error", err, "condominium_id", condo.ID())
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("unit identifier already exists in condominium")
		}
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}

	uc.logger.Infow("unit created", "unit_id", u.ID(), "condominium_id", condo.ID(), "identifier", u.Identifier())

	return &CreateUnitResult{Unit: u}, nil
}

// checkCapacity refuses creation past the plan's max units. Tenants without
// a subscription are not capped here; the gate blocks their writes anyway.
func (uc *CreateUnitUseCase) checkCapacity(ctx context.Context, condominiumID uint) error {
	sub, err := uc.subRepo.GetLatestByCondominiumID(ctx, condominiumID)
	if err != nil {
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil
	}

	plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		return fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil
	}

	count, err := uc.unitRepo.CountByCondominiumID(ctx, condominiumID)
	if err != nil {
		return fmt.Errorf("failed to count units: %w", err)
	}
	if count >= int64(plan.MaxUnits()) {
		return errors.NewConflictError("plan unit capacity reached", fmt.Sprintf("plan %s allows up to %d units", plan.Code(), plan.MaxUnits()))
	}
	return nil
}
