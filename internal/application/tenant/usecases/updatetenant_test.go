package usecases

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func TestUpdateTenantUseCase_Execute_UpdatesAdminProfile(t *testing.T) {
	condo, admin := tenantFixture(t)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	var savedAdmin *user.User
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			assert.Equal(t, condo.AdminID(), id)
			return admin, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			savedAdmin = u
			return nil
		},
	}

	uc := NewUpdateTenantUseCase(condoRepo, userRepo, &mockSubscriptionRepository{}, &mockPlanRepository{}, &mockTxRunner{}, nil, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTenantCommand{
		CondominiumID: 20,
		AdminEmail:    strPtr("nueva.admin@losrobles.example"),
		AdminName:     strPtr("Carmen"),
		AdminLastName: strPtr("Perez"),
		AdminPhone:    strPtr("+58-212-5550123"),
	})

	require.NoError(t, err)
	require.NotNil(t, result.Admin)
	require.NotNil(t, savedAdmin)
	assert.Equal(t, "nueva.admin@losrobles.example", result.Admin.Email())
	assert.Equal(t, "Carmen", result.Admin.Profile().FirstName)
	assert.Equal(t, "Perez", result.Admin.Profile().LastName)
	assert.Equal(t, "+58-212-5550123", result.Admin.Profile().Phone)
}

func TestUpdateTenantUseCase_Execute_PartialAdminProfileKeepsOtherFields(t *testing.T) {
	condo, admin := tenantFixture(t)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return admin, nil
		},
	}

	uc := NewUpdateTenantUseCase(condoRepo, userRepo, &mockSubscriptionRepository{}, &mockPlanRepository{}, &mockTxRunner{}, nil, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTenantCommand{
		CondominiumID: 20,
		AdminPhone:    strPtr("+58-414-5559876"),
	})

	require.NoError(t, err)
	require.NotNil(t, result.Admin)
	assert.Equal(t, "Maria", result.Admin.Profile().FirstName)
	assert.Equal(t, "Admin", result.Admin.Profile().LastName)
	assert.Equal(t, "+58-414-5559876", result.Admin.Profile().Phone)
}

func TestUpdateTenantUseCase_Execute_CondoOnlyLeavesAdminAlone(t *testing.T) {
	condo, _ := tenantFixture(t)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	adminLoaded := false
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			adminLoaded = true
			return nil, nil
		},
	}

	uc := NewUpdateTenantUseCase(condoRepo, userRepo, &mockSubscriptionRepository{}, &mockPlanRepository{}, &mockTxRunner{}, nil, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTenantCommand{
		CondominiumID: 20,
		Name:          strPtr("Torre Este"),
	})

	require.NoError(t, err)
	assert.Nil(t, result.Admin)
	assert.False(t, adminLoaded)
	assert.Equal(t, "Torre Este", result.Condominium.Name())
}

func TestUpdateTenantUseCase_Execute_EmailTaken(t *testing.T) {
	condo, _ := tenantFixture(t)

	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
	}
	userRepo := &mockUserRepository{
		ExistsByEmailExcludingFunc: func(ctx context.Context, email string, excludeID uint) (bool, error) {
			return true, nil
		},
	}

	uc := NewUpdateTenantUseCase(condoRepo, userRepo, &mockSubscriptionRepository{}, &mockPlanRepository{}, &mockTxRunner{}, nil, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTenantCommand{
		CondominiumID: 20,
		AdminEmail:    strPtr("taken@losrobles.example"),
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	// Duplicate emails surface as 400 for the admin dashboard.
	assert.Equal(t, http.StatusBadRequest, errors.GetAppError(err).Code)
}
