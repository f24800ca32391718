package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/application/subscription/usecases"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
	"github.com/edifai-io/edifai/internal/shared/utils"
)

// PlanHandler serves the SaaS plan catalog endpoints.
type PlanHandler struct {
	createPlanUC *usecases.CreatePlanUseCase
	listPlansUC  *usecases.ListPlansUseCase
	getPlanUC    *usecases.GetPlanUseCase
	updatePlanUC *usecases.UpdatePlanUseCase
	deletePlanUC *usecases.DeletePlanUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC *usecases.CreatePlanUseCase,
	listPlansUC *usecases.ListPlansUseCase,
	getPlanUC *usecases.GetPlanUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	deletePlanUC *usecases.DeletePlanUseCase,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		listPlansUC:  listPlansUC,
		getPlanUC:    getPlanUC,
		updatePlanUC: updatePlanUC,
		deletePlanUC: deletePlanUC,
		logger:       logger.NewLogger(),
	}
}

type CreatePlanRequest struct {
	Name              string   `json:"name" binding:"required"`
	Code              string   `json:"code" binding:"required"`
	MonthlyPrice      float64  `json:"monthly_price" binding:"required,gt=0"`
	Currency          string   `json:"currency"`
	MaxUnits          uint     `json:"max_units" binding:"required,gt=0"`
	Features          []string `json:"features"`
	AIFeaturesEnabled bool     `json:"ai_features_enabled"`
}

type UpdatePlanRequest struct {
	Name              *string  `json:"name"`
	MonthlyPrice      *float64 `json:"monthly_price"`
	Currency          *string  `json:"currency"`
	MaxUnits          *uint    `json:"max_units"`
	Features          []string `json:"features"`
	AIFeaturesEnabled *bool    `json:"ai_features_enabled"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	cmd := usecases.CreatePlanCommand{
		Name:              req.Name,
		Code:              req.Code,
		MonthlyPrice:      req.MonthlyPrice,
		Currency:          req.Currency,
		MaxUnits:          req.MaxUnits,
		Features:          req.Features,
		AIFeaturesEnabled: req.AIFeaturesEnabled,
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toPlanResponse(result.Plan), "Plan created successfully")
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toPlanResponses(result.Plans))
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), usecases.GetPlanCommand{PlanID: planID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"plan":                 toPlanResponse(result.Plan),
		"active_subscriptions": result.ActiveSubscriptions,
	})
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	cmd := usecases.UpdatePlanCommand{
		PlanID:            planID,
		Name:              req.Name,
		MonthlyPrice:      req.MonthlyPrice,
		Currency:          req.Currency,
		MaxUnits:          req.MaxUnits,
		Features:          req.Features,
		AIFeaturesEnabled: req.AIFeaturesEnabled,
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", toPlanResponse(result.Plan))
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), usecases.DeletePlanCommand{PlanID: planID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan deleted successfully", nil)
}

func parsePlanID(c *gin.Context) (uint, error) {
	return parseIDParam(c, "id", "plan")
}

func parseIDParam(c *gin.Context, param, label string) (uint, error) {
	idStr := c.Param(param)
	if idStr == "" {
		return 0, errors.NewValidationError("Missing " + label + " ID")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + label + " ID")
	}

	return uint(id), nil
}

// parseQueryID parses an optional uint query parameter. A missing value is
// not an error.
func parseQueryID(c *gin.Context, key string) (*uint, error) {
	idStr := c.Query(key)
	if idStr == "" {
		return nil, nil
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return nil, errors.NewValidationError("Invalid " + key + " parameter")
	}

	parsed := uint(id)
	return &parsed, nil
}
