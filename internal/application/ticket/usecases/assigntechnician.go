package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AssignTechnicianCommand struct {
	Actor        authorization.Actor
	TicketID     uint
	TechnicianID uint
}

type AssignTechnicianUseCase struct {
	ticketRepo     ticket.Repository
	assignmentRepo ticket.AssignmentRepository
	userRepo       user.Repository
	roleRepo       user.RoleRepository
	logger         logger.Interface
}

func NewAssignTechnicianUseCase(
	ticketRepo ticket.Repository,
	assignmentRepo ticket.AssignmentRepository,
	userRepo user.Repository,
	roleRepo user.RoleRepository,
	logger logger.Interface,
) *AssignTechnicianUseCase {
	return &AssignTechnicianUseCase{
		ticketRepo:     ticketRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		logger:         logger,
	}
}

func (uc *AssignTechnicianUseCase) Execute(ctx context.Context, cmd AssignTechnicianCommand) (*AssignmentResult, error) {
	if err := checkAssignmentActor(cmd.Actor, cmd.TechnicianID); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if t.IsClosed() {
		return nil, errors.NewBadRequestError("ticket is closed")
	}

	technician, err := uc.userRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		return nil, err
	}
	if technician == nil {
		return nil, errors.NewBadRequestError("user is not a technician")
	}
	role, err := uc.roleRepo.GetByID(ctx, technician.RoleID())
	if err != nil {
		return nil, err
	}
	if role == nil || role.Name() != authorization.RoleTechnician.String() {
		return nil, errors.NewBadRequestError("user is not a technician")
	}

	existing, err := uc.assignmentRepo.GetByTicketAndTechnician(ctx, cmd.TicketID, cmd.TechnicianID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("technician is already assigned to this ticket")
	}

	assignment, err := ticket.NewTechnicianAssignment(cmd.TicketID, cmd.TechnicianID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assignmentRepo.Save(ctx, assignment); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("technician is already assigned to this ticket")
		}
		return nil, err
	}

	uc.logger.Infow("technician assigned",
		"ticket_id", cmd.TicketID,
		"technician_id", cmd.TechnicianID,
		"actor_id", cmd.Actor.UserID)

	return newAssignmentResult(&ticket.AssignmentDetail{
		Assignment:         assignment,
		TechnicianUsername: technician.Username(),
		TechnicianFullName: technician.FullName(),
	}), nil
}

// checkAssignmentActor enforces who may touch assignments: plain users
// never, technicians only for themselves, admins for anyone.
func checkAssignmentActor(actor authorization.Actor, technicianID uint) error {
	switch actor.Role {
	case authorization.RoleAdmin:
		return nil
	case authorization.RoleTechnician:
		if technicianID != actor.UserID {
			return errors.NewForbiddenError("technicians may only manage their own assignments")
		}
		return nil
	default:
		return errors.NewForbiddenError("not allowed to manage assignments")
	}
}
