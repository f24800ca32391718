package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/mappers"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
	"github.com/edifai-io/edifai/internal/shared/db"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type PlanRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(database *gorm.DB, log logger.Interface) subscription.PlanRepository {
	return &PlanRepository{
		db:     database,
		mapper: mappers.NewPlanMapper(),
		logger: log,
	}
}

func (r *PlanRepository) Create(ctx context.Context, plan *subscription.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		return fmt.Errorf("failed to map plan to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if plan.ID() == 0 {
		if err := plan.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set plan ID: %w", err)
		}
	}
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	var model models.PlanModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PlanRepository) GetByCode(ctx context.Context, code string) (*subscription.Plan, error) {
	var model models.PlanModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Where("code = ?", code).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan by code: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PlanRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Model(&models.PlanModel{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check plan code existence: %w", err)
	}
	return count > 0, nil
}

func (r *PlanRepository) Update(ctx context.Context, plan *subscription.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		return fmt.Errorf("failed to map plan to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Where("id = ?", id).Delete(&models.PlanModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	return nil
}

func (r *PlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	var planModels []*models.PlanModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Order("monthly_price ASC").Find(&planModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return r.mapper.ToEntities(planModels)
}
