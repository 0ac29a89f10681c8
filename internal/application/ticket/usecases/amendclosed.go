package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/device"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

type AmendClosedTicketCommand struct {
	Actor           authorization.Actor
	TicketID        uint
	DeviceID        *uint
	Description     *string
	PriorityID      *uint
	StatusID        *uint
	ResolutionNotes *string
}

// AmendClosedTicketUseCase is the administrative correction path for
// tickets that are already closed.
type AmendClosedTicketUseCase struct {
	ticketRepo   ticket.Repository
	deviceRepo   device.Repository
	priorityRepo catalog.PriorityRepository
	statusRepo   catalog.StatusRepository
	sanitizer    *sanitizer.Service
	logger       logger.Interface
}

func NewAmendClosedTicketUseCase(
	ticketRepo ticket.Repository,
	deviceRepo device.Repository,
	priorityRepo catalog.PriorityRepository,
	statusRepo catalog.StatusRepository,
	sanitizer *sanitizer.Service,
	logger logger.Interface,
) *AmendClosedTicketUseCase {
	return &AmendClosedTicketUseCase{
		ticketRepo:   ticketRepo,
		deviceRepo:   deviceRepo,
		priorityRepo: priorityRepo,
		statusRepo:   statusRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (uc *AmendClosedTicketUseCase) Execute(ctx context.Context, cmd AmendClosedTicketCommand) (*TicketResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators may edit closed tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if !t.IsClosed() {
		return nil, errors.NewBadRequestError("ticket is not closed")
	}

	if cmd.DeviceID == nil && cmd.Description == nil && cmd.PriorityID == nil &&
		cmd.StatusID == nil && cmd.ResolutionNotes == nil {
		return nil, errors.NewBadRequestError("no fields to update")
	}

	if cmd.DeviceID != nil {
		exists, err := uc.deviceRepo.Exists(ctx, *cmd.DeviceID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errors.NewNotFoundError("device not found")
		}
	}
	if cmd.PriorityID != nil {
		priority, err := uc.priorityRepo.GetByID(ctx, *cmd.PriorityID)
		if err != nil {
			return nil, err
		}
		if priority == nil {
			return nil, errors.NewNotFoundError("priority not found")
		}
	}
	if cmd.StatusID != nil {
		status, err := uc.statusRepo.GetByID(ctx, *cmd.StatusID)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, errors.NewNotFoundError("status not found")
		}
	}

	description := cmd.Description
	if description != nil {
		sanitized := uc.sanitizer.Sanitize(*description)
		description = &sanitized
	}
	notes := cmd.ResolutionNotes
	if notes != nil {
		sanitized := uc.sanitizer.Sanitize(*notes)
		notes = &sanitized
	}

	if err := t.AmendClosed(ticket.Amendment{
		Description:     description,
		DeviceID:        cmd.DeviceID,
		PriorityID:      cmd.PriorityID,
		StatusID:        cmd.StatusID,
		ResolutionNotes: notes,
	}); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Infow("closed ticket amended", "id", t.ID(), "actor_id", cmd.Actor.UserID)

	detail, err := uc.ticketRepo.GetDetail(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return newTicketResult(detail), nil
}
