package mappers

import (
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
	"github.com/edifai-io/edifai/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		user.Profile{
			FirstName: model.FirstName,
			LastName:  model.LastName,
			Phone:     model.Phone,
		},
		user.NotificationChannel(model.NotificationChannel),
		user.UserStatus(model.Status),
		model.CondominiumID,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *userMapper) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	profile := entity.Profile()
	return &models.UserModel{
		ID:                  entity.ID(),
		Email:               entity.Email(),
		PasswordHash:        entity.PasswordHash(),
		Role:                entity.Role().String(),
		FirstName:           profile.FirstName,
		LastName:            profile.LastName,
		Phone:               profile.Phone,
		NotificationChannel: string(entity.NotificationChannel()),
		Status:              string(entity.Status()),
		CondominiumID:       entity.CondominiumID(),
		Version:             entity.Version(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}, nil
}

func (m *userMapper) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for i, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map user model at index %d (ID %d): %w", i, model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
