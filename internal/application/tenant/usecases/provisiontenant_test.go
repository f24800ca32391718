package usecases

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/shared/authorization"
	"github.com/edifai-io/edifai/internal/shared/errors"
)

func basicPlan(t *testing.T) *subscription.Plan {
	t.Helper()
	plan, err := subscription.NewPlan("Basic", "basic", 49.99, "USD", 50, []string{"tickets"}, false)
	require.NoError(t, err)
	require.NoError(t, plan.SetID(1))
	return plan
}

func TestProvisionTenantUseCase_Execute_Success(t *testing.T) {
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			return u.SetID(10)
		},
	}
	condoRepo := &mockCondominiumRepository{
		CreateFunc: func(ctx context.Context, c *condominium.Condominium) error {
			return c.SetID(20)
		},
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return basicPlan(t), nil
		},
	}
	var createdSub *subscription.Subscription
	subRepo := &mockSubscriptionRepository{
		CreateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			createdSub = s
			return s.SetID(30)
		},
	}
	emails := &mockEmailSender{}

	uc := NewProvisionTenantUseCase(userRepo, condoRepo, planRepo, subRepo, &mockTxRunner{}, &mockHasher{}, emails, &mockLogger{})

	result, err := uc.Execute(context.Background(), ProvisionTenantCommand{
		AdminEmail:      "admin@losrobles.example",
		AdminFirstName:  "Maria",
		CondominiumName: "Los Robles",
		Address:         "Av. Principal 123",
		PlanID:          1,
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "admin@losrobles.example", result.User.Email())
	assert.Equal(t, authorization.RoleCondoAdmin, result.User.Role())
	assert.Equal(t, "Maria", result.User.Profile().FirstName)
	assert.Equal(t, "Admin", result.User.Profile().LastName)
	assert.Equal(t, "N/A", result.User.Profile().Phone)

	// The circular link must be closed in both directions.
	require.NotNil(t, result.User.CondominiumID())
	assert.Equal(t, uint(20), *result.User.CondominiumID())
	assert.Equal(t, uint(10), result.Condominium.AdminID())

	// Default settings apply to new tenants.
	assert.Equal(t, condominium.MethodEqual, result.Condominium.Settings().CalculationMethod)
	assert.Equal(t, "USD", result.Condominium.Settings().Currency)

	require.NotNil(t, createdSub)
	assert.Equal(t, subscription.StatusActive, createdSub.Status())
	assert.Equal(t, subscription.CycleMonthly, createdSub.BillingCycle())
	expectedNext := createdSub.StartDate().AddDate(0, 1, 0)
	assert.Equal(t, expectedNext, createdSub.NextBillingDate())

	assert.Len(t, result.TempPassword, 12)
	assert.Equal(t, []string{"admin@losrobles.example"}, emails.sentTo)
}

func TestProvisionTenantUseCase_Execute_ResolvesPlanByCode(t *testing.T) {
	var requestedCode string
	planRepo := &mockPlanRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*subscription.Plan, error) {
			requestedCode = code
			return basicPlan(t), nil
		},
	}
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error { return u.SetID(10) },
	}
	condoRepo := &mockCondominiumRepository{
		CreateFunc: func(ctx context.Context, c *condominium.Condominium) error { return c.SetID(20) },
	}

	uc := NewProvisionTenantUseCase(userRepo, condoRepo, planRepo, &mockSubscriptionRepository{}, &mockTxRunner{}, &mockHasher{}, nil, &mockLogger{})

	_, err := uc.Execute(context.Background(), ProvisionTenantCommand{
		AdminEmail:      "admin@mirador.example",
		CondominiumName: "El Mirador",
		PlanCode:        "basic",
	})

	require.NoError(t, err)
	assert.Equal(t, "basic", requestedCode)
}

func TestProvisionTenantUseCase_Execute_EmailTaken(t *testing.T) {
	userRepo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	uc := NewProvisionTenantUseCase(userRepo, &mockCondominiumRepository{}, &mockPlanRepository{}, &mockSubscriptionRepository{}, &mockTxRunner{}, &mockHasher{}, nil, &mockLogger{})

	result, err := uc.Execute(context.Background(), ProvisionTenantCommand{
		AdminEmail:      "taken@example.com",
		CondominiumName: "Los Robles",
		PlanID:          1,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	// Duplicate emails surface as 400 for the admin dashboard.
	assert.Equal(t, http.StatusBadRequest, errors.GetAppError(err).Code)
}

func TestProvisionTenantUseCase_Execute_PlanNotFound(t *testing.T) {
	uc := NewProvisionTenantUseCase(&mockUserRepository{}, &mockCondominiumRepository{}, &mockPlanRepository{}, &mockSubscriptionRepository{}, &mockTxRunner{}, &mockHasher{}, nil, &mockLogger{})

	result, err := uc.Execute(context.Background(), ProvisionTenantCommand{
		AdminEmail:      "admin@example.com",
		CondominiumName: "Los Robles",
		PlanID:          999,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestProvisionTenantUseCase_Execute_RollbackOnSubscriptionFailure(t *testing.T) {
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error { return u.SetID(10) },
	}
	condoRepo := &mockCondominiumRepository{
		CreateFunc: func(ctx context.Context, c *condominium.Condominium) error { return c.SetID(20) },
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return basicPlan(t), nil
		},
	}
	subRepo := &mockSubscriptionRepository{
		CreateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			return assert.AnError
		},
	}
	emails := &mockEmailSender{}

	uc := NewProvisionTenantUseCase(userRepo, condoRepo, planRepo, subRepo, &mockTxRunner{}, &mockHasher{}, emails, &mockLogger{})

	result, err := uc.Execute(context.Background(), ProvisionTenantCommand{
		AdminEmail:      "admin@example.com",
		CondominiumName: "Los Robles",
		PlanID:          1,
	})

	assert.Nil(t, result)
	assert.Error(t, err)
	// No welcome email after a rolled-back provisioning.
	assert.Empty(t, emails.sentTo)
}

func TestProvisionTenantUseCase_Execute_EmailFailureDoesNotFail(t *testing.T) {
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error { return u.SetID(10) },
	}
	condoRepo := &mockCondominiumRepository{
		CreateFunc: func(ctx context.Context, c *condominium.Condominium) error { return c.SetID(20) },
	}
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Plan, error) {
			return basicPlan(t), nil
		},
	}
	emails := &mockEmailSender{
		SendWelcomeEmailFunc: func(ctx context.Context, to, adminName, condominiumName, tempPassword string) error {
			return assert.AnError
		},
	}

	uc := NewProvisionTenantUseCase(userRepo, condoRepo, planRepo, &mockSubscriptionRepository{}, &mockTxRunner{}, &mockHasher{}, emails, &mockLogger{})

	result, err := uc.Execute(context.Background(), ProvisionTenantCommand{
		AdminEmail:      "admin@example.com",
		CondominiumName: "Los Robles",
		PlanID:          1,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
}
