package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/mappers"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
	"github.com/edifai-io/edifai/internal/shared/db"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type UnitRepository struct {
	db     *gorm.DB
	mapper mappers.UnitMapper
	logger logger.Interface
}

func NewUnitRepository(database *gorm.DB, log logger.Interface) unit.Repository {
	return &UnitRepository{
		db:     database,
		mapper: mappers.NewUnitMapper(),
		logger: log,
	}
}

func (r *UnitRepository) Create(ctx context.Context, u *unit.Unit) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return fmt.Errorf("failed to map unit to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create unit: %w", err)
	}

	if u.ID() == 0 {
		if err := u.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set unit ID: %w", err)
		}
	}
	return nil
}

func (r *UnitRepository) GetByID(ctx context.Context, id uint) (*unit.Unit, error) {
	var model models.UnitModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unit by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *UnitRepository) ListByCondominiumID(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
	var unitModels []*models.UnitModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Scopes(db.ByCondominium(condominiumID)).
		Order("identifier ASC").
		Find(&unitModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return r.mapper.ToEntities(unitModels)
}

func (r *UnitRepository) CountByCondominiumID(ctx context.Context, condominiumID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Model(&models.UnitModel{}).
		Scopes(db.ByCondominium(condominiumID)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count units: %w", err)
	}
	return count, nil
}

func (r *UnitRepository) Update(ctx context.Context, u *unit.Unit) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return fmt.Errorf("failed to map unit to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}
	return nil
}

// IncrementBalance pushes the arithmetic into the database so concurrent
// charges and payments never lose an update.
func (r *UnitRepository) IncrementBalance(ctx context.Context, id uint, delta float64) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Model(&models.UnitModel{}).
		Where("id = ?", id).
		Update("current_balance", gorm.Expr("current_balance + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to increment unit balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("unit %d not found", id)
	}
	return nil
}

func (r *UnitRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Where("id = ?", id).Delete(&models.UnitModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete unit: %w", result.Error)
	}
	return nil
}

func (r *UnitRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Scopes(db.ByCondominium(condominiumID)).
		Delete(&models.UnitModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete units: %w", err)
	}
	return nil
}
