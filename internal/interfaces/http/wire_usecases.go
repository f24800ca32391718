package http

import (
	authUsecases "github.com/edifai-io/edifai/internal/application/auth/usecases"
	billingUsecases "github.com/edifai-io/edifai/internal/application/billing/usecases"
	condoUsecases "github.com/edifai-io/edifai/internal/application/condominium/usecases"
	subscriptionUsecases "github.com/edifai-io/edifai/internal/application/subscription/usecases"
	tenantUsecases "github.com/edifai-io/edifai/internal/application/tenant/usecases"
	ticketUsecases "github.com/edifai-io/edifai/internal/application/ticket/usecases"
	"github.com/edifai-io/edifai/internal/shared/db"
)

// allUseCases holds every use case instance served by the HTTP layer.
type allUseCases struct {
	// auth
	loginUC *authUsecases.LoginUseCase

	// tenant lifecycle
	provisionTenantUC    *tenantUsecases.ProvisionTenantUseCase
	listTenantsUC        *tenantUsecases.ListTenantsUseCase
	getTenantUC          *tenantUsecases.GetTenantUseCase
	updateTenantUC       *tenantUsecases.UpdateTenantUseCase
	toggleTenantStatusUC *tenantUsecases.ToggleTenantStatusUseCase
	deleteTenantUC       *tenantUsecases.DeleteTenantUseCase

	// plan catalog
	createPlanUC *subscriptionUsecases.CreatePlanUseCase
	listPlansUC  *subscriptionUsecases.ListPlansUseCase
	getPlanUC    *subscriptionUsecases.GetPlanUseCase
	updatePlanUC *subscriptionUsecases.UpdatePlanUseCase
	deletePlanUC *subscriptionUsecases.DeletePlanUseCase

	// units
	createUnitUC *condoUsecases.CreateUnitUseCase
	listUnitsUC  *condoUsecases.ListUnitsUseCase

	// billing
	calculateFeesUC   *billingUsecases.CalculateMonthlyFeesUseCase
	createExpenseUC   *billingUsecases.CreateExpenseUseCase
	listExpensesUC    *billingUsecases.ListExpensesUseCase
	voidExpenseUC     *billingUsecases.VoidExpenseUseCase
	listReceiptsUC    *billingUsecases.ListReceiptsUseCase
	markReceiptPaidUC *billingUsecases.MarkReceiptPaidUseCase

	// tickets
	createTicketUC       *ticketUsecases.CreateTicketUseCase
	listTicketsUC        *ticketUsecases.ListTicketsUseCase
	updateTicketStatusUC *ticketUsecases.UpdateTicketStatusUseCase
	addTicketCommentUC   *ticketUsecases.AddTicketCommentUseCase
}

func (c *Container) initUseCases() {
	txManager := db.NewTransactionManager(c.db)
	repos := c.repos

	c.ucs = &allUseCases{
		loginUC: authUsecases.NewLoginUseCase(repos.userRepo, c.hasher, c.jwtSvc, c.log),

		provisionTenantUC: tenantUsecases.NewProvisionTenantUseCase(
			repos.userRepo, repos.condoRepo, repos.planRepo, repos.subRepo,
			txManager, c.hasher, c.emailService, c.log,
		),
		listTenantsUC: tenantUsecases.NewListTenantsUseCase(
			repos.condoRepo, repos.userRepo, repos.subRepo, repos.planRepo, c.log,
		),
		getTenantUC: tenantUsecases.NewGetTenantUseCase(
			repos.condoRepo, repos.userRepo, repos.subRepo, repos.planRepo, repos.unitRepo, c.log,
		),
		updateTenantUC: tenantUsecases.NewUpdateTenantUseCase(
			repos.condoRepo, repos.userRepo, repos.subRepo, repos.planRepo,
			txManager, c.statusCache, c.log,
		),
		toggleTenantStatusUC: tenantUsecases.NewToggleTenantStatusUseCase(
			repos.condoRepo, repos.userRepo, repos.subRepo,
			txManager, c.statusCache, c.log,
		),
		deleteTenantUC: tenantUsecases.NewDeleteTenantUseCase(
			repos.condoRepo, repos.userRepo, repos.subRepo, repos.unitRepo,
			repos.expenseRepo, repos.receiptRepo, repos.ticketRepo,
			txManager, c.statusCache, c.log,
		),

		createPlanUC: subscriptionUsecases.NewCreatePlanUseCase(repos.planRepo, c.log),
		listPlansUC:  subscriptionUsecases.NewListPlansUseCase(repos.planRepo, c.log),
		getPlanUC:    subscriptionUsecases.NewGetPlanUseCase(repos.planRepo, repos.subRepo, c.log),
		updatePlanUC: subscriptionUsecases.NewUpdatePlanUseCase(repos.planRepo, c.log),
		deletePlanUC: subscriptionUsecases.NewDeletePlanUseCase(repos.planRepo, repos.subRepo, c.log),

		createUnitUC: condoUsecases.NewCreateUnitUseCase(
			repos.condoRepo, repos.unitRepo, repos.subRepo, repos.planRepo, c.log,
		),
		listUnitsUC: condoUsecases.NewListUnitsUseCase(repos.unitRepo, c.log),

		calculateFeesUC: billingUsecases.NewCalculateMonthlyFeesUseCase(
			repos.condoRepo, repos.unitRepo, repos.expenseRepo, repos.receiptRepo,
			txManager, c.cfg.Billing, c.log,
		),
		createExpenseUC:   billingUsecases.NewCreateExpenseUseCase(repos.condoRepo, repos.expenseRepo, c.log),
		listExpensesUC:    billingUsecases.NewListExpensesUseCase(repos.expenseRepo, c.log),
		voidExpenseUC:     billingUsecases.NewVoidExpenseUseCase(repos.expenseRepo, c.log),
		listReceiptsUC:    billingUsecases.NewListReceiptsUseCase(repos.receiptRepo, c.log),
		markReceiptPaidUC: billingUsecases.NewMarkReceiptPaidUseCase(repos.receiptRepo, repos.unitRepo, txManager, c.log),

		createTicketUC:       ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, repos.condoRepo, c.log),
		listTicketsUC:        ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, c.log),
		updateTicketStatusUC: ticketUsecases.NewUpdateTicketStatusUseCase(repos.ticketRepo, c.log),
		addTicketCommentUC:   ticketUsecases.NewAddTicketCommentUseCase(repos.ticketRepo, c.log),
	}
}
