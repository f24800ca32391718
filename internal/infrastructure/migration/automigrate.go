package migration

import (
	"github.com/edifai-io/edifai/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistent model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CondominiumModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.UnitModel{},
		&models.ExpenseModel{},
		&models.ReceiptModel{},
		&models.TicketModel{},
	}
}
