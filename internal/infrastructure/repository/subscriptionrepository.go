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

type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(database *gorm.DB, log logger.Interface) subscription.Repository {
	return &SubscriptionRepository{
		db:     database,
		mapper: mappers.NewSubscriptionMapper(),
		logger: log,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if sub.ID() == 0 {
		if err := sub.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set subscription ID: %w", err)
		}
	}
	return nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepository) GetLatestByCondominiumID(ctx context.Context, condominiumID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Scopes(db.ByCondominium(condominiumID)).
		Order("start_date DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest subscription: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepository) ListByCondominiumID(ctx context.Context, condominiumID uint) ([]*subscription.Subscription, error) {
	var subModels []*models.SubscriptionModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Scopes(db.ByCondominium(condominiumID)).
		Order("start_date DESC").
		Find(&subModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return r.mapper.ToEntities(subModels)
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) UpdateStatusByCondominiumID(ctx context.Context, condominiumID uint, status subscription.Status) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Scopes(db.ByCondominium(condominiumID)).
		Update("status", string(status)).Error
	if err != nil {
		return fmt.Errorf("failed to update subscription status: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Scopes(db.ByCondominium(condominiumID)).
		Delete(&models.SubscriptionModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete subscriptions: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) CountActiveByPlanID(ctx context.Context, planID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("plan_id = ? AND status = ?", planID, string(subscription.StatusActive)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active subscriptions: %w", err)
	}
	return count, nil
}
