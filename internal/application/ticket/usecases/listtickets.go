package usecases

import (
	"context"
	"fmt"

	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type ListTicketsCommand struct {
	CondominiumID uint
	Type          *ticket.Type
	Status        *ticket.Status
	RequesterID   *uint
	Page          int
	Limit         int
}

type ListTicketsResult struct {
	Tickets []*ticket.Ticket
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	tickets, total, err := uc.ticketRepo.ListByCondominiumID(ctx, cmd.CondominiumID, ticket.Filter{
		Type:      cmd.Type,
		Status:    cmd.Status,
		CreatedBy: cmd.RequesterID,
		Page:      cmd.Page,
		Limit:     cmd.Limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "condominium_id", cmd.CondominiumID)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return &ListTicketsResult{Tickets: tickets, Total: total}, nil
}
