package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/mappers"
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
	"github.com/edifai-io/edifai/internal/shared/db"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type ReceiptRepository struct {
	db     *gorm.DB
	mapper mappers.ReceiptMapper
	logger logger.Interface
}

func NewReceiptRepository(database *gorm.DB, log logger.Interface) receipt.Repository {
	return &ReceiptRepository{
		db:     database,
		mapper: mappers.NewReceiptMapper(),
		logger: log,
	}
}

func (r *ReceiptRepository) Create(ctx context.Context, rec *receipt.Receipt) error {
	model, err := r.mapper.ToModel(rec)
	if err != nil {
		return fmt.Errorf("failed to map receipt to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	if rec.ID() == 0 {
		if err := rec.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set receipt ID: %w", err)
		}
	}
	return nil
}

func (r *ReceiptRepository) GetByID(ctx context.Context, id uint) (*receipt.Receipt, error) {
	var model models.ReceiptModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get receipt by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ReceiptRepository) ListByCondominiumID(ctx context.Context, condominiumID uint, filter receipt.Filter) ([]*receipt.Receipt, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.WithContext(ctx).Model(&models.ReceiptModel{}).
		Scopes(db.ByCondominium(condominiumID))

	if filter.BillingPeriod != "" {
		query = query.Where("billing_period = ?", filter.BillingPeriod)
	}
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count receipts: %w", err)
	}

	if filter.Limit > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		query = query.Offset(offset).Limit(filter.Limit)
	}

	var receiptModels []*models.ReceiptModel
	if err := query.Order("issued_at DESC").Find(&receiptModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list receipts: %w", err)
	}

	entities, err := r.mapper.ToEntities(receiptModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *ReceiptRepository) ExistsForUnitAndPeriod(ctx context.Context, unitID uint, billingPeriod string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Model(&models.ReceiptModel{}).
		Where("unit_id = ? AND billing_period = ?", unitID, billingPeriod).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check receipt existence: %w", err)
	}
	return count > 0, nil
}

func (r *ReceiptRepository) Update(ctx context.Context, rec *receipt.Receipt) error {
	model, err := r.mapper.ToModel(rec)
	if err != nil {
		return fmt.Errorf("failed to map receipt to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update receipt: %w", err)
	}
	return nil
}

func (r *ReceiptRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Scopes(db.ByCondominium(condominiumID)).
		Delete(&models.ReceiptModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete receipts: %w", err)
	}
	return nil
}
