package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type UpdateTicketStatusCommand struct {
	CondominiumID uint
	TicketID      uint
	Status        string
	// Comment, when present, is logged alongside the status change.
	Comment  string
	AuthorID uint
}

type UpdateTicketStatusResult struct {
	Ticket *ticket.Ticket
}

type UpdateTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*UpdateTicketStatusResult, error) {
	tkt, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if tkt == nil || tkt.CondominiumID() != cmd.CondominiumID {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := tkt.TransitionTo(ticket.Status(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Comment != "" {
		if err := tkt.AddInteraction(cmd.AuthorID, cmd.Comment); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, tkt); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", tkt.ID())
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket status updated",
		"ticket_id", tkt.ID(),
		"status", tkt.Status(),
	)

	return &UpdateTicketStatusResult{Ticket: tkt}, nil
}
