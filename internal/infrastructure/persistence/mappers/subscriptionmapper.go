package mappers

import (
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
)

// SubscriptionMapper handles the conversion between domain entities and persistence models
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type subscriptionMapper struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.CondominiumID,
		model.PlanID,
		model.StartDate,
		model.NextBillingDate,
		subscription.Status(model.Status),
		subscription.BillingCycle(model.BillingCycle),
		model.PaymentMethodToken,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *subscriptionMapper) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:                 entity.ID(),
		CondominiumID:      entity.CondominiumID(),
		PlanID:             entity.PlanID(),
		StartDate:          entity.StartDate(),
		NextBillingDate:    entity.NextBillingDate(),
		Status:             string(entity.Status()),
		BillingCycle:       string(entity.BillingCycle()),
		PaymentMethodToken: entity.PaymentMethodToken(),
		Version:            entity.Version(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}

func (m *subscriptionMapper) ToEntities(subModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subModels))
	for i, model := range subModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map subscription model at index %d (ID %d): %w", i, model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
