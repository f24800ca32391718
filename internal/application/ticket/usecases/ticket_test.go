package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/shared/errors"
)

func condoWithAmenities(t *testing.T, amenities ...string) *condominium.Condominium {
	t.Helper()
	condo, err := condominium.NewCondominium("Los Robles", "Av. Principal 123", 10, condominium.DefaultSettings())
	require.NoError(t, err)
	require.NoError(t, condo.SetID(20))
	for _, a := range amenities {
		condo.AddAmenity(a)
	}
	return condo
}

func openTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.NewTicket(20, 30, ticket.TypeMaintenance, "Leaking pipe", "Water leak in hallway")
	require.NoError(t, err)
	require.NoError(t, tkt.SetID(40))
	return tkt
}

func TestCreateTicketUseCase_Execute_Maintenance(t *testing.T) {
	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condoWithAmenities(t), nil
		},
	}
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return tkt.SetID(40)
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, condoRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		CondominiumID: 20,
		RequesterID:   30,
		Type:          "maintenance",
		Subject:       "Leaking pipe",
		Description:   "Water leak in hallway",
	})

	require.NoError(t, err)
	assert.Equal(t, ticket.StatusOpen, result.Ticket.Status())
	assert.Equal(t, ticket.TypeMaintenance, result.Ticket.Type())
	assert.Equal(t, uint(30), result.Ticket.CreatedBy())
}

func TestCreateTicketUseCase_Execute_RequiresAuthentication(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockCondominiumRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		CondominiumID: 20,
		Type:          "maintenance",
		Subject:       "Leaking pipe",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestCreateTicketUseCase_Execute_AmenityReservation(t *testing.T) {
	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condoWithAmenities(t, "pool", "gym"), nil
		},
	}
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return tkt.SetID(41)
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, condoRepo, &mockLogger{})

	reservedFor := time.Now().Add(48 * time.Hour)
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		CondominiumID: 20,
		RequesterID:   30,
		Type:          "amenity_reservation",
		Subject:       "Pool party",
		Amenity:       "pool",
		ReservedFor:   &reservedFor,
	})

	require.NoError(t, err)
	assert.Equal(t, ticket.TypeAmenityReservation, result.Ticket.Type())
	assert.Equal(t, "pool", result.Ticket.Amenity())
}

func TestCreateTicketUseCase_Execute_AmenityNotOffered(t *testing.T) {
	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condoWithAmenities(t, "gym"), nil
		},
	}

	uc := NewCreateTicketUseCase(&mockTicketRepository{}, condoRepo, &mockLogger{})

	reservedFor := time.Now().Add(48 * time.Hour)
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		CondominiumID: 20,
		RequesterID:   30,
		Type:          "amenity_reservation",
		Subject:       "Pool party",
		Amenity:       "pool",
		ReservedFor:   &reservedFor,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicketStatusUseCase_Execute_ValidTransition(t *testing.T) {
	tkt := openTicket(t)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	uc := NewUpdateTicketStatusUseCase(ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{
		CondominiumID: 20,
		TicketID:      40,
		Status:        "approved",
		Comment:       "Scheduled for Monday",
		AuthorID:      10,
	})

	require.NoError(t, err)
	assert.Equal(t, ticket.StatusApproved, result.Ticket.Status())
	require.Len(t, result.Ticket.Interactions(), 1)
	assert.Equal(t, "Scheduled for Monday", result.Ticket.Interactions()[0].Message)
}

func TestUpdateTicketStatusUseCase_Execute_InvalidTransition(t *testing.T) {
	tkt := openTicket(t)
	require.NoError(t, tkt.Reject())

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	uc := NewUpdateTicketStatusUseCase(ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{
		CondominiumID: 20,
		TicketID:      40,
		Status:        "completed",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicketStatusUseCase_Execute_WrongCondominium(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return openTicket(t), nil
		},
	}

	uc := NewUpdateTicketStatusUseCase(ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketStatusCommand{
		CondominiumID: 999,
		TicketID:      40,
		Status:        "approved",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAddTicketCommentUseCase_Execute(t *testing.T) {
	tkt := openTicket(t)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	uc := NewAddTicketCommentUseCase(ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), AddTicketCommentCommand{
		CondominiumID: 20,
		TicketID:      40,
		AuthorID:      30,
		Message:       "Any update on this?",
	})

	require.NoError(t, err)
	require.Len(t, result.Ticket.Interactions(), 1)
	assert.Equal(t, uint(30), result.Ticket.Interactions()[0].AuthorID)
}
