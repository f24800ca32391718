package handlers

import (
	"time"

	"github.com/edifai-io/edifai/internal/domain/subscription"
)

// PlanResponse is the wire shape of a SaaS plan.
type PlanResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Code              string    `json:"code"`
	MonthlyPrice      float64   `json:"monthly_price"`
	Currency          string    `json:"currency"`
	MaxUnits          uint      `json:"max_units"`
	Features          []string  `json:"features"`
	AIFeaturesEnabled bool      `json:"ai_features_enabled"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toPlanResponse(p *subscription.Plan) *PlanResponse {
	if p == nil {
		return nil
	}
	return &PlanResponse{
		ID:                p.ID(),
		Name:              p.Name(),
		Code:              p.Code(),
		MonthlyPrice:      p.MonthlyPrice(),
		Currency:          p.Currency(),
		MaxUnits:          p.MaxUnits(),
		Features:          p.Features(),
		AIFeaturesEnabled: p.AIFeaturesEnabled(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func toPlanResponses(plans []*subscription.Plan) []*PlanResponse {
	responses := make([]*PlanResponse, 0, len(plans))
	for _, p := range plans {
		responses = append(responses, toPlanResponse(p))
	}
	return responses
}
