package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/application/condominium/usecases"
	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
	"github.com/edifai-io/edifai/internal/shared/utils"
)

// UnitHandler serves the tenant-scoped unit registry endpoints.
type UnitHandler struct {
	createUnitUC *usecases.CreateUnitUseCase
	listUnitsUC  *usecases.ListUnitsUseCase
	logger       logger.Interface
}

func NewUnitHandler(createUnitUC *usecases.CreateUnitUseCase, listUnitsUC *usecases.ListUnitsUseCase) *UnitHandler {
	return &UnitHandler{
		createUnitUC: createUnitUC,
		listUnitsUC:  listUnitsUC,
		logger:       logger.NewLogger(),
	}
}

type CreateUnitRequest struct {
	Identifier        string  `json:"identifier" binding:"required"`
	AreaM2            float64 `json:"area_m2" binding:"required,gt=0"`
	AliquotPercentage float64 `json:"aliquot_percentage" binding:"gte=0,lte=100"`
	OwnerID           *uint   `json:"owner_id"`
}

// UnitResponse is the wire shape of a unit.
type UnitResponse struct {
	ID                uint      `json:"id"`
	CondominiumID     uint      `json:"condominium_id"`
	Identifier        string    `json:"identifier"`
	OwnerID           *uint     `json:"owner_id,omitempty"`
	AreaM2            float64   `json:"area_m2"`
	AliquotPercentage float64   `json:"aliquot_percentage"`
	CurrentBalance    float64   `json:"current_balance"`
	CreatedAt         time.Time `json:"created_at"`
}

func toUnitResponse(u *unit.Unit) *UnitResponse {
	if u == nil {
		return nil
	}
	specs := u.Specs()
	return &UnitResponse{
		ID:                u.ID(),
		CondominiumID:     u.CondominiumID(),
		Identifier:        u.Identifier(),
		OwnerID:           u.OwnerID(),
		AreaM2:            specs.AreaM2,
		AliquotPercentage: specs.AliquotPercentage,
		CurrentBalance:    u.CurrentBalance(),
		CreatedAt:         u.CreatedAt(),
	}
}

func (h *UnitHandler) CreateUnit(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create unit", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	cmd := usecases.CreateUnitCommand{
		CondominiumID:     condominiumID,
		Identifier:        req.Identifier,
		AreaM2:            req.AreaM2,
		AliquotPercentage: req.AliquotPercentage,
		OwnerID:           req.OwnerID,
	}

	result, err := h.createUnitUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toUnitResponse(result.Unit), "Unit created successfully")
}

func (h *UnitHandler) ListUnits(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	result, err := h.listUnitsUC.Execute(c.Request.Context(), usecases.ListUnitsCommand{CondominiumID: condominiumID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	units := make([]*UnitResponse, 0, len(result.Units))
	for _, u := range result.Units {
		units = append(units, toUnitResponse(u))
	}

	utils.SuccessResponse(c, http.StatusOK, "", units)
}
