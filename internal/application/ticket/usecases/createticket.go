package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type CreateTicketCommand struct {
	CondominiumID uint
	RequesterID   uint
	Type          string
	Subject       string
	Description   string
	// Amenity and ReservedFor apply to amenity_reservation tickets only.
	Amenity     string
	ReservedFor *time.Time
}

type CreateTicketResult struct {
	Ticket *ticket.Ticket
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	condoRepo  condominium.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.Repository, condoRepo condominium.Repository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		condoRepo:  condoRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if cmd.RequesterID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	condo, err := uc.condoRepo.GetByID(ctx, cmd.CondominiumID)
	if err != nil {
		uc.logger.Errorw("failed to get condominium", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to get condominium: %w", err)
	}
	if condo == nil {
		return nil, errors.NewNotFoundError("condominium not found")
	}

	var tkt *ticket.Ticket
	switch ticket.Type(cmd.Type) {
	case ticket.TypeAmenityReservation:
		if cmd.ReservedFor == nil {
			return nil, errors.NewValidationError("reservation time is required")
		}
		if !offersAmenity(condo, cmd.Amenity) {
			return nil, errors.NewValidationError("amenity not offered by condominium", cmd.Amenity)
		}
		tkt, err = ticket.NewAmenityReservation(condo.ID(), cmd.RequesterID, cmd.Subject, cmd.Description, cmd.Amenity, *cmd.ReservedFor)
	default:
		tkt, err = ticket.NewTicket(condo.ID(), cmd.RequesterID, ticket.Type(cmd.Type), cmd.Subject, cmd.Description)
	}
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, tkt); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err, "condominium_id", condo.ID())
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", tkt.ID(),
		"condominium_id", condo.ID(),
		"type", tkt.Type(),
		"requester_id", cmd.RequesterID,
	)

	return &CreateTicketResult{Ticket: tkt}, nil
}

func offersAmenity(condo *condominium.Condominium, amenity string) bool {
	if amenity == "" {
		return false
	}
	for _, a := range condo.Amenities() {
		if a == amenity {
			return true
		}
	}
	return false
}
