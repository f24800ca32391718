package http

import (
	"github.com/edifai-io/edifai/internal/interfaces/http/handlers"
	"github.com/edifai-io/edifai/internal/interfaces/http/middleware"
	"github.com/edifai-io/edifai/internal/shared/services/markdown"
)

// allHandlers holds every HTTP handler instance.
type allHandlers struct {
	authHandler    *handlers.AuthHandler
	tenantHandler  *handlers.TenantHandler
	planHandler    *handlers.PlanHandler
	unitHandler    *handlers.UnitHandler
	billingHandler *handlers.BillingHandler
	ticketHandler  *handlers.TicketHandler
}

func (c *Container) initHandlers() {
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(ucs.loginUC, c.jwtSvc),
		tenantHandler: handlers.NewTenantHandler(
			ucs.provisionTenantUC, ucs.listTenantsUC, ucs.getTenantUC,
			ucs.updateTenantUC, ucs.toggleTenantStatusUC, ucs.deleteTenantUC,
		),
		planHandler: handlers.NewPlanHandler(
			ucs.createPlanUC, ucs.listPlansUC, ucs.getPlanUC,
			ucs.updatePlanUC, ucs.deletePlanUC,
		),
		unitHandler: handlers.NewUnitHandler(ucs.createUnitUC, ucs.listUnitsUC),
		billingHandler: handlers.NewBillingHandler(
			ucs.calculateFeesUC, ucs.createExpenseUC, ucs.listExpensesUC,
			ucs.voidExpenseUC, ucs.listReceiptsUC, ucs.markReceiptPaidUC,
		),
		ticketHandler: handlers.NewTicketHandler(
			ucs.createTicketUC, ucs.listTicketsUC,
			ucs.updateTicketStatusUC, ucs.addTicketCommentUC,
			markdown.NewMarkdownService(),
		),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.subscriptionGate = middleware.NewSubscriptionGate(c.repos.subRepo, c.repos.planRepo, c.statusCache, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
}
