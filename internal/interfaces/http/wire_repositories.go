package http

import (
	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/infrastructure/repository"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo    user.Repository
	condoRepo   condominium.Repository
	planRepo    subscription.PlanRepository
	subRepo     subscription.Repository
	unitRepo    unit.Repository
	expenseRepo expense.Repository
	receiptRepo receipt.Repository
	ticketRepo  ticket.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:    repository.NewUserRepository(db, log),
		condoRepo:   repository.NewCondominiumRepository(db, log),
		planRepo:    repository.NewPlanRepository(db, log),
		subRepo:     repository.NewSubscriptionRepository(db, log),
		unitRepo:    repository.NewUnitRepository(db, log),
		expenseRepo: repository.NewExpenseRepository(db, log),
		receiptRepo: repository.NewReceiptRepository(db, log),
		ticketRepo:  repository.NewTicketRepository(db, log),
	}
}
