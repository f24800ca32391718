package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/mappers"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
	"github.com/edifai-io/edifai/internal/shared/db"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type ExpenseRepository struct {
	db     *gorm.DB
	mapper mappers.ExpenseMapper
	logger logger.Interface
}

func NewExpenseRepository(database *gorm.DB, log logger.Interface) expense.Repository {
	return &ExpenseRepository{
		db:     database,
		mapper: mappers.NewExpenseMapper(),
		logger: log,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to map expense to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	if e.ID() == 0 {
		if err := e.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set expense ID: %w", err)
		}
	}
	return nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uint) (*expense.Expense, error) {
	var model models.ExpenseModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ExpenseRepository) ListByCondominiumID(ctx context.Context, condominiumID uint, filter expense.Filter) ([]*expense.Expense, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.WithContext(ctx).Model(&models.ExpenseModel{}).
		Scopes(db.ByCondominium(condominiumID))

	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if filter.Type != nil {
		query = query.Where("expense_type = ?", string(*filter.Type))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if filter.Limit > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		query = query.Offset(offset).Limit(filter.Limit)
	}

	var expenseModels []*models.ExpenseModel
	if err := query.Order("created_at DESC").Find(&expenseModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	entities, err := r.mapper.ToEntities(expenseModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *ExpenseRepository) SumActiveInRange(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error) {
	var total float64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Model(&models.ExpenseModel{}).
		Scopes(db.ByCondominium(condominiumID)).
		Where("date >= ? AND date <= ? AND status = ?", from, to, string(expense.StatusActive)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenses in range: %w", err)
	}
	return total, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to map expense to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Scopes(db.ByCondominium(condominiumID)).
		Delete(&models.ExpenseModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete expenses: %w", err)
	}
	return nil
}
