package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/application/tenant/usecases"
	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/shared/authorization"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
	"github.com/edifai-io/edifai/internal/shared/utils"
)

// TenantHandler serves the platform-level tenant administration endpoints:
// provisioning, lifecycle and listing of condominiums as SaaS tenants.
type TenantHandler struct {
	provisionTenantUC    *usecases.ProvisionTenantUseCase
	listTenantsUC        *usecases.ListTenantsUseCase
	getTenantUC          *usecases.GetTenantUseCase
	updateTenantUC       *usecases.UpdateTenantUseCase
	toggleTenantStatusUC *usecases.ToggleTenantStatusUseCase
	deleteTenantUC       *usecases.DeleteTenantUseCase
	logger               logger.Interface
}

func NewTenantHandler(
	provisionTenantUC *usecases.ProvisionTenantUseCase,
	listTenantsUC *usecases.ListTenantsUseCase,
	getTenantUC *usecases.GetTenantUseCase,
	updateTenantUC *usecases.UpdateTenantUseCase,
	toggleTenantStatusUC *usecases.ToggleTenantStatusUseCase,
	deleteTenantUC *usecases.DeleteTenantUseCase,
) *TenantHandler {
	return &TenantHandler{
		provisionTenantUC:    provisionTenantUC,
		listTenantsUC:        listTenantsUC,
		getTenantUC:          getTenantUC,
		updateTenantUC:       updateTenantUC,
		toggleTenantStatusUC: toggleTenantStatusUC,
		deleteTenantUC:       deleteTenantUC,
		logger:               logger.NewLogger(),
	}
}

// Provisioning field names follow the pre-migration API contract that
// the admin dashboard still speaks (camelCase, "_id" in responses).
type ProvisionTenantRequest struct {
	CondoName     string `json:"condoName" binding:"required"`
	CondoAddress  string `json:"condoAddress" binding:"required"`
	AdminEmail    string `json:"adminEmail" binding:"required,email"`
	AdminName     string `json:"adminName" binding:"required"`
	AdminLastName string `json:"adminLastName"`
	AdminPhone    string `json:"adminPhone"`
	PlanID        uint   `json:"planId"`
	PlanCode      string `json:"planCode"`
}

type UpdateTenantRequest struct {
	CondoName     *string               `json:"condoName"`
	CondoAddress  *string               `json:"condoAddress"`
	AdminEmail    *string               `json:"adminEmail"`
	AdminName     *string               `json:"adminName"`
	AdminLastName *string               `json:"adminLastName"`
	AdminPhone    *string               `json:"adminPhone"`
	Settings      *condominium.Settings `json:"settings"`
	PlanID        *uint                 `json:"planId"`
}

type ToggleTenantStatusRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *TenantHandler) ProvisionTenant(c *gin.Context) {
	var req ProvisionTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for provision tenant", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	if req.PlanID == 0 && req.PlanCode == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Either planId or planCode is required"))
		return
	}

	cmd := usecases.ProvisionTenantCommand{
		AdminEmail:      req.AdminEmail,
		AdminFirstName:  req.AdminName,
		AdminLastName:   req.AdminLastName,
		AdminPhone:      req.AdminPhone,
		CondominiumName: req.CondoName,
		Address:         req.CondoAddress,
		PlanID:          req.PlanID,
		PlanCode:        req.PlanCode,
	}

	// Resellers provision on their own behalf; the tenant stays attached
	// to their portfolio.
	if currentUserRole(c) == authorization.RoleReseller {
		if callerID, ok := currentUserID(c); ok {
			cmd.ResellerID = &callerID
		}
	}

	result, err := h.provisionTenantUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"condominium":  toCondominiumSummary(result.Condominium),
		"admin":        toAdminSummary(result.User),
		"subscription": toSubscriptionResponse(result.Subscription),
	}, "Tenant provisioned successfully")
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListTenantsCommand{
		Page:  pagination.Page,
		Limit: pagination.Limit,
	}

	// Resellers only see their own portfolio.
	if currentUserRole(c) == authorization.RoleReseller {
		if callerID, ok := currentUserID(c); ok {
			cmd.ResellerID = &callerID
		}
	}

	result, err := h.listTenantsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tenants := make([]*TenantResponse, 0, len(result.Tenants))
	for _, row := range result.Tenants {
		tenants = append(tenants, toTenantResponse(row))
	}

	utils.ListSuccessResponse(c, tenants, result.Total, pagination.Page, pagination.Limit)
}

func (h *TenantHandler) GetTenant(c *gin.Context) {
	condominiumID, err := parseTenantID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTenantUC.Execute(c.Request.Context(), usecases.GetTenantCommand{CondominiumID: condominiumID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"tenant":     toTenantResponse(result.Tenant),
		"unit_count": result.UnitCount,
	})
}

func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	condominiumID, err := parseTenantID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update tenant", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	cmd := usecases.UpdateTenantCommand{
		CondominiumID: condominiumID,
		Name:          req.CondoName,
		Address:       req.CondoAddress,
		AdminEmail:    req.AdminEmail,
		AdminName:     req.AdminName,
		AdminLastName: req.AdminLastName,
		AdminPhone:    req.AdminPhone,
		Settings:      req.Settings,
		PlanID:        req.PlanID,
	}

	result, err := h.updateTenantUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload := gin.H{
		"condominium": toCondominiumResponse(result.Condominium),
	}
	if result.Admin != nil {
		payload["admin"] = toUserResponse(result.Admin)
	}
	utils.SuccessResponse(c, http.StatusOK, "Tenant updated successfully", payload)
}

func (h *TenantHandler) ToggleTenantStatus(c *gin.Context) {
	condominiumID, err := parseTenantID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ToggleTenantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for toggle tenant status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	cmd := usecases.ToggleTenantStatusCommand{
		CondominiumID: condominiumID,
		Activate:      *req.Enabled,
	}

	result, err := h.toggleTenantStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tenant status updated successfully", gin.H{
		"adminStatus":        result.AdminStatus,
		"subscriptionStatus": result.SubscriptionStatus,
	})
}

func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	condominiumID, err := parseTenantID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTenantUC.Execute(c.Request.Context(), usecases.DeleteTenantCommand{CondominiumID: condominiumID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tenant deleted successfully", nil)
}

func parseTenantID(c *gin.Context) (uint, error) {
	return parseIDParam(c, "id", "tenant")
}
