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

type UpdateTicketCommand struct {
	Actor           authorization.Actor
	TicketID        uint
	DeviceID        *uint
	Description     *string
	PriorityID      *uint
	StatusID        *uint
	ResolutionNotes *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	deviceRepo device.Repository
	statusRepo catalog.StatusRepository
	sanitizer  *sanitizer.Service
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	deviceRepo device.Repository,
	statusRepo catalog.StatusRepository,
	sanitizer *sanitizer.Service,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		deviceRepo: deviceRepo,
		statusRepo: statusRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketResult, error) {
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

	// Plain users may only touch description and device, and only on
	// their own tickets. Anything else they send is dropped silently.
	if !cmd.Actor.Role.IsStaff() {
		if t.UserID() != cmd.Actor.UserID {
			return nil, errors.NewForbiddenError("not allowed to update this ticket")
		}
		cmd.PriorityID = nil
		cmd.StatusID = nil
		cmd.ResolutionNotes = nil
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
		if err := t.ChangeDevice(*cmd.DeviceID); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if cmd.Description != nil {
		if err := t.UpdateDescription(uc.sanitizer.Sanitize(*cmd.Description)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.PriorityID != nil {
		if err := t.ChangePriority(*cmd.PriorityID); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
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
		notes := cmd.ResolutionNotes
		if notes != nil {
			sanitized := uc.sanitizer.Sanitize(*notes)
			notes = &sanitized
		}
		if err := t.ChangeStatus(status.ID(), status.IsFinal(), notes); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	} else if cmd.ResolutionNotes != nil {
		if err := t.UpdateResolutionNotes(uc.sanitizer.Sanitize(*cmd.ResolutionNotes)); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated", "id", t.ID(), "actor_id", cmd.Actor.UserID)

	detail, err := uc.ticketRepo.GetDetail(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return newTicketResult(detail), nil
}
