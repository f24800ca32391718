package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between domain entities and persistence models
type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) (*models.TicketModel, error)
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	var interactions []ticket.Interaction
	if len(model.Interactions) > 0 {
		if err := json.Unmarshal(model.Interactions, &interactions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket interactions: %w", err)
		}
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.CondominiumID,
		model.CreatedBy,
		ticket.Type(model.TicketType),
		model.Subject,
		model.Description,
		ticket.Status(model.Status),
		model.Amenity,
		model.ReservedFor,
		interactions,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket entity: %w", err)
	}

	return entity, nil
}

func (m *ticketMapper) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	interactionsJSON, err := json.Marshal(entity.Interactions())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket interactions: %w", err)
	}

	return &models.TicketModel{
		ID:            entity.ID(),
		CondominiumID: entity.CondominiumID(),
		CreatedBy:     entity.CreatedBy(),
		TicketType:    string(entity.Type()),
		Subject:       entity.Subject(),
		Description:   entity.Description(),
		Status:        string(entity.Status()),
		Amenity:       entity.Amenity(),
		ReservedFor:   entity.ReservedFor(),
		Interactions:  datatypes.JSON(interactionsJSON),
		Version:       entity.Version(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *ticketMapper) ToEntities(ticketModels []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(ticketModels))
	for i, model := range ticketModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map ticket model at index %d (ID %d): %w", i, model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
