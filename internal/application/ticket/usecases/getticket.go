package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, actor authorization.Actor, ticketID uint) (*TicketResult, error) {
	detail, err := uc.ticketRepo.GetDetail(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !authorization.CanAccessTicket(actor, detail.Ticket.UserID()) {
		return nil, errors.NewForbiddenError("not allowed to view this ticket")
	}

	return newTicketResult(detail), nil
}
