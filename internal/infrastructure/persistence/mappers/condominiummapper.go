package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
)

// CondominiumMapper handles the conversion between domain entities and persistence models
type CondominiumMapper interface {
	ToEntity(model *models.CondominiumModel) (*condominium.Condominium, error)
	ToModel(entity *condominium.Condominium) (*models.CondominiumModel, error)
	ToEntities(models []*models.CondominiumModel) ([]*condominium.Condominium, error)
}

type condominiumMapper struct{}

func NewCondominiumMapper() CondominiumMapper {
	return &condominiumMapper{}
}

func (m *condominiumMapper) ToEntity(model *models.CondominiumModel) (*condominium.Condominium, error) {
	if model == nil {
		return nil, nil
	}

	settings := condominium.DefaultSettings()
	if len(model.Settings) > 0 {
		if err := json.Unmarshal(model.Settings, &settings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal condominium settings: %w", err)
		}
	}

	var amenities []string
	if len(model.Amenities) > 0 {
		if err := json.Unmarshal(model.Amenities, &amenities); err != nil {
			return nil, fmt.Errorf("failed to unmarshal condominium amenities: %w", err)
		}
	}

	entity, err := condominium.ReconstructCondominium(
		model.ID,
		model.Name,
		model.Address,
		model.AdminID,
		model.ResellerID,
		settings,
		amenities,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct condominium entity: %w", err)
	}

	return entity, nil
}

func (m *condominiumMapper) ToModel(entity *condominium.Condominium) (*models.CondominiumModel, error) {
	if entity == nil {
		return nil, nil
	}

	settingsJSON, err := json.Marshal(entity.Settings())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal condominium settings: %w", err)
	}

	amenitiesJSON, err := json.Marshal(entity.Amenities())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal condominium amenities: %w", err)
	}

	return &models.CondominiumModel{
		ID:         entity.ID(),
		Name:       entity.Name(),
		Address:    entity.Address(),
		AdminID:    entity.AdminID(),
		ResellerID: entity.ResellerID(),
		Settings:   datatypes.JSON(settingsJSON),
		Amenities:  datatypes.JSON(amenitiesJSON),
		Version:    entity.Version(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *condominiumMapper) ToEntities(condoModels []*models.CondominiumModel) ([]*condominium.Condominium, error) {
	entities := make([]*condominium.Condominium, 0, len(condoModels))
	for i, model := range condoModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map condominium model at index %d (ID %d): %w", i, model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
