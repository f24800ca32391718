package mappers

import (
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
)

// ExpenseMapper handles the conversion between domain entities and persistence models
type ExpenseMapper interface {
	ToEntity(model *models.ExpenseModel) (*expense.Expense, error)
	ToModel(entity *expense.Expense) (*models.ExpenseModel, error)
	ToEntities(models []*models.ExpenseModel) ([]*expense.Expense, error)
}

type expenseMapper struct{}

func NewExpenseMapper() ExpenseMapper {
	return &expenseMapper{}
}

func (m *expenseMapper) ToEntity(model *models.ExpenseModel) (*expense.Expense, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := expense.ReconstructExpense(
		model.ID,
		model.CondominiumID,
		model.Description,
		model.Amount,
		expense.Type(model.ExpenseType),
		model.Category,
		model.Date,
		model.InvoiceURL,
		expense.Status(model.Status),
		model.RegisteredBy,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct expense entity: %w", err)
	}

	return entity, nil
}

func (m *expenseMapper) ToModel(entity *expense.Expense) (*models.ExpenseModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ExpenseModel{
		ID:            entity.ID(),
		CondominiumID: entity.CondominiumID(),
		Description:   entity.Description(),
		Amount:        entity.Amount(),
		ExpenseType:   string(entity.Type()),
		Category:      entity.Category(),
		Date:          entity.Date(),
		InvoiceURL:    entity.InvoiceURL(),
		Status:        string(entity.Status()),
		RegisteredBy:  entity.RegisteredBy(),
		Version:       entity.Version(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *expenseMapper) ToEntities(expenseModels []*models.ExpenseModel) ([]*expense.Expense, error) {
	entities := make([]*expense.Expense, 0, len(expenseModels))
	for i, model := range expenseModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map expense model at index %d (ID %d): %w", i, model.ID, err)
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
