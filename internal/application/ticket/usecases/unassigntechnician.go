package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UnassignTechnicianCommand struct {
	Actor        authorization.Actor
	TicketID     uint
	TechnicianID uint
}

type UnassignTechnicianUseCase struct {
	ticketRepo     ticket.Repository
	assignmentRepo ticket.AssignmentRepository
	logger         logger.Interface
}

func NewUnassignTechnicianUseCase(
	ticketRepo ticket.Repository,
	assignmentRepo ticket.AssignmentRepository,
	logger logger.Interface,
) *UnassignTechnicianUseCase {
	return &UnassignTechnicianUseCase{ticketRepo: ticketRepo, assignmentRepo: assignmentRepo, logger: logger}
}

func (uc *UnassignTechnicianUseCase) Execute(ctx context.Context, cmd UnassignTechnicianCommand) error {
	if err := checkAssignmentActor(cmd.Actor, cmd.TechnicianID); err != nil {
		return err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if t == nil {
		return errors.NewNotFoundError("ticket not found")
	}
	if t.IsClosed() {
		return errors.NewBadRequestError("ticket is closed")
	}

	existing, err := uc.assignmentRepo.GetByTicketAndTechnician(ctx, cmd.TicketID, cmd.TechnicianID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("assignment not found")
	}

	if err := uc.assignmentRepo.DeleteByTicketAndTechnician(ctx, cmd.TicketID, cmd.TechnicianID); err != nil {
		return err
	}

	uc.logger.Infow("technician unassigned",
		"ticket_id", cmd.TicketID,
		"technician_id", cmd.TechnicianID,
		"actor_id", cmd.Actor.UserID)
	return nil
}
