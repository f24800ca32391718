package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID        = "user_id"
	ContextKeyUserRole      = "user_role"
	ContextKeyCondominiumID = "condominium_id"
	ContextKeyRequestID     = "request_id"

	// Database table names
	TableUsers         = "users"
	TableCondominiums  = "condominiums"
	TablePlans         = "saas_plans"
	TableSubscriptions = "subscriptions"
	TableUnits         = "units"
	TableExpenses      = "expenses"
	TableReceipts      = "receipts"
	TableTickets       = "tickets"

	// Default values
	DefaultCurrency = "USD"

	// Temporary password length for provisioned admins
	TempPasswordLength = 12

	// Days until a generated receipt is due
	ReceiptDueDays = 5

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
