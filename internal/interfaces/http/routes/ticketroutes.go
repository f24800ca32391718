package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/interfaces/http/handlers"
	"github.com/edifai-io/edifai/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for resident request routes.
type TicketRouteConfig struct {
	TicketHandler        *handlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	SubscriptionGate     *middleware.SubscriptionGate
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupTicketRoutes configures the ticket routes. Ticket creation is also
// gated: a suspended tenant cannot raise new requests.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	tickets.Use(cfg.SubscriptionGate.Enforce())
	{
		tickets.GET("",
			cfg.PermissionMiddleware.RequirePermission("ticket", "read"),
			cfg.TicketHandler.ListTickets)
		tickets.POST("",
			cfg.PermissionMiddleware.RequirePermission("ticket", "create"),
			cfg.TicketHandler.CreateTicket)
		tickets.PATCH("/:id/status",
			cfg.PermissionMiddleware.RequirePermission("ticket", "update"),
			cfg.TicketHandler.UpdateTicketStatus)
		tickets.POST("/:id/comments",
			cfg.PermissionMiddleware.RequirePermission("ticket", "create"),
			cfg.TicketHandler.AddTicketComment)
	}
}
