package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/mappers"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
	"github.com/edifai-io/edifai/internal/shared/db"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type CondominiumRepository struct {
	db     *gorm.DB
	mapper mappers.CondominiumMapper
	logger logger.Interface
}

func NewCondominiumRepository(database *gorm.DB, log logger.Interface) condominium.Repository {
	return &CondominiumRepository{
		db:     database,
		mapper: mappers.NewCondominiumMapper(),
		logger: log,
	}
}

func (r *CondominiumRepository) Create(ctx context.Context, condo *condominium.Condominium) error {
	model, err := r.mapper.ToModel(condo)
	if err != nil {
		return fmt.Errorf("failed to map condominium to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create condominium: %w", err)
	}

	if condo.ID() == 0 {
		if err := condo.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set condominium ID: %w", err)
		}
	}
	return nil
}

func (r *CondominiumRepository) GetByID(ctx context.Context, id uint) (*condominium.Condominium, error) {
	var model models.CondominiumModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get condominium by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CondominiumRepository) Update(ctx context.Context, condo *condominium.Condominium) error {
	model, err := r.mapper.ToModel(condo)
	if err != nil {
		return fmt.Errorf("failed to map condominium to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update condominium: %w", err)
	}
	return nil
}

func (r *CondominiumRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Where("id = ?", id).Delete(&models.CondominiumModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete condominium: %w", result.Error)
	}
	return nil
}

func (r *CondominiumRepository) List(ctx context.Context, filter condominium.Filter) ([]*condominium.Condominium, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.WithContext(ctx).Model(&models.CondominiumModel{})

	if filter.ResellerID != nil {
		query = query.Where("reseller_id = ?", *filter.ResellerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count condominiums: %w", err)
	}

	if filter.Limit > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		query = query.Offset(offset).Limit(filter.Limit)
	}

	var condoModels []*models.CondominiumModel
	if err := query.Order("created_at DESC").Find(&condoModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list condominiums: %w", err)
	}

	entities, err := r.mapper.ToEntities(condoModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
