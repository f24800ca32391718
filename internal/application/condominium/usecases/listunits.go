package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type ListUnitsCommand struct {
	CondominiumID uint
}

type ListUnitsResult struct {
	Units []*unit.Unit
}

type ListUnitsUseCase struct {
	unitRepo unit.Repository
	logger   logger.Interface
}

func NewListUnitsUseCase(unitRepo unit.Repository, logger logger.Interface) *ListUnitsUseCase {
	return &ListUnitsUseCase{
		unitRepo: unitRepo,
		logger:   logger,
	}
}

func (uc *ListUnitsUseCase) Execute(ctx context.Context, cmd ListUnitsCommand) (*ListUnitsResult, error) {
	units, err := uc.unitRepo.ListByCondominiumID(ctx, cmd.CondominiumID)
	if err != nil {
		uc.logger.Errorw("failed to list units", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return &ListUnitsResult{Units: units}, nil
}
