package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/shared/errors"
)

func storedPlan(t *testing.T) *subscription.Plan {
	t.Helper()
	plan, err := subscription.NewPlan("Premium", "premium", 99.99, "USD", 200, []string{"tickets", "ai_chatbot"}, true)
	require.NoError(t, err)
	require.NoError(t, plan.SetID(7))
	return plan
}

func TestCreatePlanUseCase_Execute_Success(t *testing.T) {
	planRepo := &mockPlanRepository{
		CreateFunc: func(ctx context.Context, p *subscription.Plan) error {
			return p.SetID(7)
		},
	}

	uc := NewCreatePlanUseCase(planRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreatePlanCommand{
		Name:              "Premium",
		Code:              "premium",
		MonthlyPrice:      99.99,
		Currency:          "USD",
		MaxUnits:          200,
		Features:          []string{"tickets", "ai_chatbot"},
		AIFeaturesEnabled: true,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.Plan.ID())
	assert.Equal(t, "premium", result.Plan.Code())
	assert.True(t, result.Plan.AIFeaturesEnabled())
}

func TestCreatePlanUseCase_Execute_DuplicateCode(t *testing.T) {
	planRepo := &mockPlanRepository{
		ExistsByCodeFunc: func(ctx context.Context, code string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreatePlanUseCase(planRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreatePlanCommand{
		Name:         "Premium",
		Code:         "premium",
		MonthlyPrice: 99.99,
		MaxUnits:     200,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreatePlanUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreatePlanCommand
	}{
		{
			name: "missing name",
			cmd:  CreatePlanCommand{Code: "x", MonthlyPrice: 1, MaxUnits: 10},
		},
		{
			name: "missing code",
			cmd:  CreatePlanCommand{Name: "X", MonthlyPrice: 1, MaxUnits: 10},
		},
		{
			name: "negative price",
			cmd:  CreatePlanCommand{Name: "X", Code: "x", MonthlyPrice: -1, MaxUnits: 10},
		},
		{
			name: "zero max units",
			cmd:  CreatePlanCommand{Name: "X", Code: "x", MonthlyPrice: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreatePlanUseCase(&mockPlanRepository{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUpdatePlanUseCase_Execute_PartialUpdate(t *testing.T) {
	plan := storedPlan(t)
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return plan, nil
		},
	}

	uc := NewUpdatePlanUseCase(planRepo, &mockLogger{})

	newPrice := 129.99
	result, err := uc.Execute(context.Background(), UpdatePlanCommand{
		PlanID:       7,
		MonthlyPrice: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, 129.99, result.Plan.MonthlyPrice())
	// Untouched fields stay as they were.
	assert.Equal(t, "USD", result.Plan.Currency())
	assert.Equal(t, "Premium", result.Plan.Name())
	assert.Equal(t, uint(200), result.Plan.MaxUnits())
}

func TestDeletePlanUseCase_Execute_Success(t *testing.T) {
	deleted := false
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return storedPlan(t), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}

	uc := NewDeletePlanUseCase(planRepo, &mockSubscriptionRepository{}, &mockLogger{})

	err := uc.Execute(context.Background(), DeletePlanCommand{PlanID: 7})

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeletePlanUseCase_Execute_BlockedByActiveSubscriptions(t *testing.T) {
	deleted := false
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return storedPlan(t), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	subRepo := &mockSubscriptionRepository{
		CountActiveByPlanIDFunc: func(ctx context.Context, planID uint) (int64, error) {
			return 3, nil
		},
	}

	uc := NewDeletePlanUseCase(planRepo, subRepo, &mockLogger{})

	err := uc.Execute(context.Background(), DeletePlanCommand{PlanID: 7})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.False(t, deleted)
}

func TestDeletePlanUseCase_Execute_NotFound(t *testing.T) {
	uc := NewDeletePlanUseCase(&mockPlanRepository{}, &mockSubscriptionRepository{}, &mockLogger{})

	err := uc.Execute(context.Background(), DeletePlanCommand{PlanID: 404})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
