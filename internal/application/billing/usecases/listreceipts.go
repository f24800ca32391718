package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type ListReceiptsCommand struct {
	CondominiumID uint
	BillingPeriod string
	UnitID        *uint
	Status        *receipt.Status
	Page          int
	Limit         int
}

type ListReceiptsResult struct {
	Receipts []*receipt.Receipt
	Total    int64
}

type ListReceiptsUseCase struct {
	receiptRepo receipt.Repository
	logger      logger.Interface
}

func NewListReceiptsUseCase(receiptRepo receipt.Repository, logger logger.Interface) *ListReceiptsUseCase {
	return &ListReceiptsUseCase{
		receiptRepo: receiptRepo,
		logger:      logger,
	}
}

func (uc *ListReceiptsUseCase) Execute(ctx context.Context, cmd ListReceiptsCommand) (*ListReceiptsResult, error) {
	receipts, total, err := uc.receiptRepo.ListByCondominiumID(ctx, cmd.CondominiumID, receipt.Filter{
		BillingPeriod: cmd.BillingPeriod,
		UnitID:        cmd.UnitID,
		Status:        cmd.Status,
		Page:          cmd.Page,
		Limit:         cmd.Limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list receipts", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return &ListReceiptsResult{Receipts: receipts, Total: total}, nil
}
