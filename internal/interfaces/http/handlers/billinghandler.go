package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/application/billing/usecases"
	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
	"github.com/edifai-io/edifai/internal/shared/utils"
)

// BillingHandler serves the tenant-scoped billing endpoints: expense
// registration, the monthly fee calculation run, and receipts.
type BillingHandler struct {
	calculateFeesUC   *usecases.CalculateMonthlyFeesUseCase
	createExpenseUC   *usecases.CreateExpenseUseCase
	listExpensesUC    *usecases.ListExpensesUseCase
	voidExpenseUC     *usecases.VoidExpenseUseCase
	listReceiptsUC    *usecases.ListReceiptsUseCase
	markReceiptPaidUC *usecases.MarkReceiptPaidUseCase
	logger            logger.Interface
}

func NewBillingHandler(
	calculateFeesUC *usecases.CalculateMonthlyFeesUseCase,
	createExpenseUC *usecases.CreateExpenseUseCase,
	listExpensesUC *usecases.ListExpensesUseCase,
	voidExpenseUC *usecases.VoidExpenseUseCase,
	listReceiptsUC *usecases.ListReceiptsUseCase,
	markReceiptPaidUC *usecases.MarkReceiptPaidUseCase,
) *BillingHandler {
	return &BillingHandler{
		calculateFeesUC:   calculateFeesUC,
		createExpenseUC:   createExpenseUC,
		listExpensesUC:    listExpensesUC,
		voidExpenseUC:     voidExpenseUC,
		listReceiptsUC:    listReceiptsUC,
		markReceiptPaidUC: markReceiptPaidUC,
		logger:            logger.NewLogger(),
	}
}

type CalculateFeesRequest struct {
	BillingPeriod string `json:"billing_period" binding:"required"`
	// CondominiumID is only honored for platform operators; tenant users
	// always bill their own condominium.
	CondominiumID uint `json:"condominium_id"`
}

type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"required,oneof=fixed variable reserve"`
	Category    string  `json:"category" binding:"required"`
	// Date is RFC 3339; the registration time is used when omitted.
	Date       time.Time `json:"date"`
	InvoiceURL string    `json:"invoice_url"`
}

func (h *BillingHandler) CalculateFees(c *gin.Context) {
	var req CalculateFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for calculate fees", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		if currentUserRole(c).IsSuperAdmin() && req.CondominiumID != 0 {
			condominiumID = req.CondominiumID
		} else {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
			return
		}
	}

	cmd := usecases.CalculateMonthlyFeesCommand{
		CondominiumID: condominiumID,
		BillingPeriod: req.BillingPeriod,
	}

	result, err := h.calculateFeesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Monthly fees calculated successfully", gin.H{
		"total_expenses":     result.TotalExpenses,
		"receipts_generated": result.UnitCount,
		"receipts":           toReceiptResponses(result.Receipts),
	})
}

func (h *BillingHandler) CreateExpense(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Authentication required"))
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create expense", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	cmd := usecases.CreateExpenseCommand{
		CondominiumID: condominiumID,
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      req.Category,
		Date:          req.Date,
		InvoiceURL:    req.InvoiceURL,
		RegisteredBy:  userID,
	}

	result, err := h.createExpenseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toExpenseResponse(result.Expense), "Expense registered successfully")
}

func (h *BillingHandler) ListExpenses(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	pagination := utils.ParsePagination(c)

	cmd := usecases.ListExpensesCommand{
		CondominiumID: condominiumID,
		BillingPeriod: c.Query("billing_period"),
		Page:          pagination.Page,
		Limit:         pagination.Limit,
	}

	if typeStr := c.Query("type"); typeStr != "" {
		expenseType := expense.Type(typeStr)
		if !expenseType.IsValid() {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid expense type filter"))
			return
		}
		cmd.Type = &expenseType
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := expense.Status(statusStr)
		cmd.Status = &status
	}

	result, err := h.listExpensesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toExpenseResponses(result.Expenses), result.Total, pagination.Page, pagination.Limit)
}

func (h *BillingHandler) VoidExpense(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	expenseID, err := parseIDParam(c, "id", "expense")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.VoidExpenseCommand{
		CondominiumID: condominiumID,
		ExpenseID:     expenseID,
	}

	result, err := h.voidExpenseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Expense voided successfully", toExpenseResponse(result.Expense))
}

func (h *BillingHandler) ListReceipts(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	pagination := utils.ParsePagination(c)

	cmd := usecases.ListReceiptsCommand{
		CondominiumID: condominiumID,
		BillingPeriod: c.Query("billing_period"),
		Page:          pagination.Page,
		Limit:         pagination.Limit,
	}

	if unitID, err := parseQueryID(c, "unit_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	} else if unitID != nil {
		cmd.UnitID = unitID
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := receipt.Status(statusStr)
		cmd.Status = &status
	}

	result, err := h.listReceiptsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toReceiptResponses(result.Receipts), result.Total, pagination.Page, pagination.Limit)
}

func (h *BillingHandler) MarkReceiptPaid(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	receiptID, err := parseIDParam(c, "id", "receipt")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.MarkReceiptPaidCommand{
		CondominiumID: condominiumID,
		ReceiptID:     receiptID,
	}

	result, err := h.markReceiptPaidUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Receipt marked as paid", toReceiptResponse(result.Receipt))
}
