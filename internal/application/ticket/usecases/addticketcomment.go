package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type AddTicketCommentCommand struct {
	CondominiumID uint
	TicketID      uint
	AuthorID      uint
	Message       string
}

type AddTicketCommentResult struct {
	Ticket *ticket.Ticket
}

type AddTicketCommentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddTicketCommentUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddTicketCommentUseCase {
	return &AddTicketCommentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AddTicketCommentUseCase) Execute(ctx context.Context, cmd AddTicketCommentCommand) (*AddTicketCommentResult, error) {
	tkt, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if tkt == nil || tkt.CondominiumID() != cmd.CondominiumID {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := tkt.AddInteraction(cmd.AuthorID, cmd.Message); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, tkt); err != nil {
		uc.logger.Errorw("failed to save ticket comment", "error", err, "ticket_id", tkt.ID())
		return nil, fmt.Errorf("failed to save ticket comment: %w", err)
	}

	return &AddTicketCommentResult{Ticket: tkt}, nil
}
