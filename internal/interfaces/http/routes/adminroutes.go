package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/interfaces/http/handlers"
	"github.com/edifai-io/edifai/internal/interfaces/http/middleware"
	"github.com/edifai-io/edifai/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for platform administration routes.
type AdminRouteConfig struct {
	TenantHandler        *handlers.TenantHandler
	PlanHandler          *handlers.PlanHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures tenant lifecycle and plan catalog routes.
// These are platform-scoped: no subscription gate applies.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	admin.Use(authorization.RequireRole(authorization.RoleSuperAdmin, authorization.RoleReseller))
	{
		admin.POST("/provision-tenant",
			cfg.PermissionMiddleware.RequirePermission("tenant", "create"),
			cfg.TenantHandler.ProvisionTenant)

		tenants := admin.Group("/tenants")
		{
			tenants.GET("",
				cfg.PermissionMiddleware.RequirePermission("tenant", "read"),
				cfg.TenantHandler.ListTenants)
			tenants.GET("/:id",
				cfg.PermissionMiddleware.RequirePermission("tenant", "read"),
				cfg.TenantHandler.GetTenant)
			tenants.PUT("/:id",
				cfg.PermissionMiddleware.RequirePermission("tenant", "update"),
				cfg.TenantHandler.UpdateTenant)
			tenants.PATCH("/:id/status",
				cfg.PermissionMiddleware.RequirePermission("tenant", "toggle"),
				cfg.TenantHandler.ToggleTenantStatus)
			tenants.DELETE("/:id",
				cfg.PermissionMiddleware.RequirePermission("tenant", "delete"),
				cfg.TenantHandler.DeleteTenant)
		}

		plans := admin.Group("/plans")
		{
			plans.GET("",
				cfg.PermissionMiddleware.RequirePermission("plan", "read"),
				cfg.PlanHandler.ListPlans)
			plans.GET("/:id",
				cfg.PermissionMiddleware.RequirePermission("plan", "read"),
				cfg.PlanHandler.GetPlan)
			plans.POST("",
				cfg.PermissionMiddleware.RequirePermission("plan", "create"),
				cfg.PlanHandler.CreatePlan)
			plans.PUT("/:id",
				cfg.PermissionMiddleware.RequirePermission("plan", "update"),
				cfg.PlanHandler.UpdatePlan)
			plans.DELETE("/:id",
				cfg.PermissionMiddleware.RequirePermission("plan", "delete"),
				cfg.PlanHandler.DeletePlan)
		}
	}
}
