package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/interfaces/http/handlers"
	"github.com/edifai-io/edifai/internal/interfaces/http/middleware"
)

// CondoRouteConfig holds dependencies for condominium-scoped routes.
type CondoRouteConfig struct {
	UnitHandler          *handlers.UnitHandler
	BillingHandler       *handlers.BillingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	SubscriptionGate     *middleware.SubscriptionGate
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCondoRoutes configures the tenant-scoped building management
// routes. Every mutating request passes through the subscription gate.
func SetupCondoRoutes(engine *gin.Engine, cfg *CondoRouteConfig) {
	condo := engine.Group("/condo")
	condo.Use(cfg.AuthMiddleware.RequireAuth())
	condo.Use(cfg.SubscriptionGate.Enforce())
	{
		condo.POST("/calculate-fees",
			cfg.PermissionMiddleware.RequirePermission("billing", "calculate"),
			cfg.BillingHandler.CalculateFees)

		units := condo.Group("/units")
		{
			units.GET("",
				cfg.PermissionMiddleware.RequirePermission("unit", "read"),
				cfg.UnitHandler.ListUnits)
			units.POST("",
				cfg.PermissionMiddleware.RequirePermission("unit", "create"),
				cfg.UnitHandler.CreateUnit)
		}

		expenses := condo.Group("/expenses")
		{
			expenses.GET("",
				cfg.PermissionMiddleware.RequirePermission("expense", "read"),
				cfg.BillingHandler.ListExpenses)
			expenses.POST("",
				cfg.PermissionMiddleware.RequirePermission("expense", "create"),
				cfg.BillingHandler.CreateExpense)
			expenses.PATCH("/:id/void",
				cfg.PermissionMiddleware.RequirePermission("expense", "void"),
				cfg.BillingHandler.VoidExpense)
		}

		receipts := condo.Group("/receipts")
		{
			receipts.GET("",
				cfg.PermissionMiddleware.RequirePermission("receipt", "read"),
				cfg.BillingHandler.ListReceipts)
			receipts.PATCH("/:id/pay",
				cfg.PermissionMiddleware.RequirePermission("receipt", "pay"),
				cfg.BillingHandler.MarkReceiptPaid)
		}
	}
}
