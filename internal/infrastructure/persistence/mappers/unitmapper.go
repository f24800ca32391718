package mappers

import (
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
)

// UnitMapper handles the conversion between domain entities and persistence models
type UnitMapper interface {
	ToEntity(model *models.UnitModel) (*unit.Unit, error)
	ToModel(entity *unit.Unit) (*models.UnitModel, error)
	ToEntities(models []*models.UnitModel) ([]*unit.Unit, error)
}

type unitMapper struct{}

func NewUnitMapper() UnitMapper {
	return &unitMapper{}
}

func (m *unitMapper) ToEntity(model *models.UnitModel) (*unit.Unit, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := unit.ReconstructUnit(
		model.ID,
		model.CondominiumID,
		model.Identifier,
		model.OwnerID,
		unit.Specs{
			AreaM2:            model.AreaM2,
			AliquotPercentage: model.AliquotPercentage,
		},
		model.CurrentBalance,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct unit entity: %w", err)
	}

	return entity, nil
}

func (m *unitMapper) ToModel(entity *unit.Unit) (*models.UnitModel, error) {
	if entity == nil {
		return nil, nil
	}

	specs := entity.Specs()
	return &models.UnitModel{
		ID:                entity.ID(),
		CondominiumID:     entity.CondominiumID(),
		Identifier:        entity.Identifier(),
		OwnerID:           entity.OwnerID(),
		AreaM2:            specs.AreaM2,
		AliquotPercentage: specs.AliquotPercentage,
		CurrentBalance:    entity.CurrentBalance(),
		Version:           entity.Version(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *unitMapper) ToEntities(unitModels []*models.UnitModel) ([]*unit.Unit, error) {
	entities := make([]*unit.Unit, 0, len(unitModels))
	for i, model := range unitModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map unit model at index %d (ID %d): %w", i, model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
