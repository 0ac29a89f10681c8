// Package usecases implements the ticket lifecycle: creation, role-gated
// updates, status transitions with close semantics, technician
// assignment and attachments.
package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/device"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/sanitizer"
)

type CreateTicketCommand struct {
	Actor       authorization.Actor
	DeviceID    uint
	Description string
	PriorityID  uint
	// OnBehalfUserID files the ticket for another user. Admin only.
	OnBehalfUserID *uint
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	deviceRepo   device.Repository
	priorityRepo catalog.PriorityRepository
	userRepo     user.Repository
	sanitizer    *sanitizer.Service
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	deviceRepo device.Repository,
	priorityRepo catalog.PriorityRepository,
	userRepo user.Repository,
	sanitizer *sanitizer.Service,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		deviceRepo:   deviceRepo,
		priorityRepo: priorityRepo,
		userRepo:     userRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*TicketResult, error) {
	authorID := cmd.Actor.UserID
	if cmd.OnBehalfUserID != nil {
		if !cmd.Actor.Role.IsAdmin() {
			return nil, errors.NewForbiddenError("only administrators may create tickets for other users")
		}
		target, err := uc.userRepo.GetByID(ctx, *cmd.OnBehalfUserID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, errors.NewNotFoundError("user not found")
		}
		authorID = target.ID()
	}

	exists, err := uc.deviceRepo.Exists(ctx, cmd.DeviceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("device not found")
	}

	priority, err := uc.priorityRepo.GetByID(ctx, cmd.PriorityID)
	if err != nil {
		return nil, err
	}
	if priority == nil {
		return nil, errors.NewNotFoundError("priority not found")
	}

	description := uc.sanitizer.Sanitize(cmd.Description)
	newTicket, err := ticket.NewTicket(cmd.DeviceID, authorID, description, cmd.PriorityID, constants.InitialStatusID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"id", newTicket.ID(),
		"author_id", authorID,
		"device_id", cmd.DeviceID,
		"created_by", cmd.Actor.UserID)

	detail, err := uc.ticketRepo.GetDetail(ctx, newTicket.ID())
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.NewInternalError("ticket disappeared after create")
	}

	return newTicketResult(detail), nil
}
