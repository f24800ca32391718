package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/interfaces/http/middleware"
	"github.com/edifai-io/edifai/internal/interfaces/http/routes"
	"github.com/edifai-io/edifai/internal/shared/utils"
)

// SetupRoutes installs the global middleware chain and every route group.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.ErrorHandler())

	c.engine.GET("/health", func(ctx *gin.Context) {
		utils.SuccessResponse(ctx, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
	})

	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		TenantHandler:        c.hdlrs.tenantHandler,
		PlanHandler:          c.hdlrs.planHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupCondoRoutes(c.engine, &routes.CondoRouteConfig{
		UnitHandler:          c.hdlrs.unitHandler,
		BillingHandler:       c.hdlrs.billingHandler,
		AuthMiddleware:       c.authMiddleware,
		SubscriptionGate:     c.subscriptionGate,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		SubscriptionGate:     c.subscriptionGate,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
