package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

type ChangeTicketStatusCommand struct {
	Actor           authorization.Actor
	TicketID        uint
	StatusID        uint
	ResolutionNotes *string
}

type ChangeTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	statusRepo catalog.StatusRepository
	sanitizer  *sanitizer.Service
	logger     logger.Interface
}

func NewChangeTicketStatusUseCase(
	ticketRepo ticket.Repository,
	statusRepo catalog.StatusRepository,
	sanitizer *sanitizer.Service,
	logger logger.Interface,
) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		ticketRepo: ticketRepo,
		statusRepo: statusRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*TicketResult, error) {
	if !cmd.Actor.Role.IsStaff() {
		return nil, errors.NewForbiddenError("not allowed to change ticket status")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if t.IsClosed() {
		return nil, errors.NewConflictError("ticket is closed, use the edit-closed endpoint")
	}

	status, err := uc.statusRepo.GetByID(ctx, cmd.StatusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, errors.NewNotFoundError("status not found")
	}

	notes := cmd.ResolutionNotes
	if notes != nil {
		sanitized := uc.sanitizer.Sanitize(*notes)
		notes = &sanitized
	}

	if err := t.ChangeStatus(status.ID(), status.IsFinal(), notes); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"id", t.ID(),
		"status_id", status.ID(),
		"closed", t.IsClosed(),
		"actor_id", cmd.Actor.UserID)

	detail, err := uc.ticketRepo.GetDetail(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return newTicketResult(detail), nil
}
