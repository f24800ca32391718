package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
)

// ReceiptMapper handles the conversion between domain entities and persistence models
type ReceiptMapper interface {
	ToEntity(model *models.ReceiptModel) (*receipt.Receipt, error)
	ToModel(entity *receipt.Receipt) (*models.ReceiptModel, error)
	ToEntities(models []*models.ReceiptModel) ([]*receipt.Receipt, error)
}

type receiptMapper struct{}

func NewReceiptMapper() ReceiptMapper {
	return &receiptMapper{}
}

func (m *receiptMapper) ToEntity(model *models.ReceiptModel) (*receipt.Receipt, error) {
	if model == nil {
		return nil, nil
	}

	var breakdown []receipt.BreakdownLine
	if len(model.Breakdown) > 0 {
		if err := json.Unmarshal(model.Breakdown, &breakdown); err != nil {
			return nil, fmt.Errorf("failed to unmarshal receipt breakdown: %w", err)
		}
	}

	entity, err := receipt.ReconstructReceipt(
		model.ID,
		model.UnitID,
		model.CondominiumID,
		model.BillingPeriod,
		model.TotalAmount,
		breakdown,
		receipt.Status(model.Status),
		model.IssuedAt,
		model.DueDate,
		model.PaidAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct receipt entity: %w", err)
	}

	return entity, nil
}

func (m *receiptMapper) ToModel(entity *receipt.Receipt) (*models.ReceiptModel, error) {
	if entity == nil {
		return nil, nil
	}

	breakdownJSON, err := json.Marshal(entity.Breakdown())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt breakdown: %w", err)
	}

	return &models.ReceiptModel{
		ID:            entity.ID(),
		UnitID:        entity.UnitID(),
		CondominiumID: entity.CondominiumID(),
		BillingPeriod: entity.BillingPeriod(),
		TotalAmount:   entity.TotalAmount(),
		Breakdown:     datatypes.JSON(breakdownJSON),
		Status:        string(entity.Status()),
		IssuedAt:      entity.IssuedAt(),
		DueDate:       entity.DueDate(),
		PaidAt:        entity.PaidAt(),
		Version:       entity.Version(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *receiptMapper) ToEntities(receiptModels []*models.ReceiptModel) ([]*receipt.Receipt, error) {
	entities := make([]*receipt.Receipt, 0, len(receiptModels))
	for i, model := range receiptModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map receipt model at index %d (ID %d): %w", i, model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
