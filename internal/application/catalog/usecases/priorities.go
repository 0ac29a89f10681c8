package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreatePriorityCommand struct {
	Name         string
	DisplayOrder *int
}

type CreatePriorityUseCase struct {
	priorityRepo catalog.PriorityRepository
	logger       logger.Interface
}

func NewCreatePriorityUseCase(priorityRepo catalog.PriorityRepository, logger logger.Interface) *CreatePriorityUseCase {
	return &CreatePriorityUseCase{priorityRepo: priorityRepo, logger: logger}
}

func (uc *CreatePriorityUseCase) Execute(ctx context.Context, cmd CreatePriorityCommand) (*PriorityResult, error) {
	existing, err := uc.priorityRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("priority name already exists")
	}

	priority, err := catalog.NewPriority(cmd.Name, cmd.DisplayOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.priorityRepo.Create(ctx, priority); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("priority name already exists")
		}
		return nil, err
	}

	uc.logger.Infow("priority created", "id", priority.ID(), "name", priority.Name())
	return newPriorityResult(priority), nil
}

type UpdatePriorityCommand struct {
	PriorityID   uint
	Name         string
	DisplayOrder *int
}

type UpdatePriorityUseCase struct {
	priorityRepo catalog.PriorityRepository
	logger       logger.Interface
}

func NewUpdatePriorityUseCase(priorityRepo catalog.PriorityRepository, logger logger.Interface) *UpdatePriorityUseCase {
	return &UpdatePriorityUseCase{priorityRepo: priorityRepo, logger: logger}
}

func (uc *UpdatePriorityUseCase) Execute(ctx context.Context, cmd UpdatePriorityCommand) (*PriorityResult, error) {
	priority, err := uc.priorityRepo.GetByID(ctx, cmd.PriorityID)
	if err != nil {
		return nil, err
	}
	if priority == nil {
		return nil, errors.NewNotFoundError("priority not found")
	}

	other, err := uc.priorityRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID() != priority.ID() {
		return nil, errors.NewConflictError("priority name already exists")
	}

	if err := priority.Update(cmd.Name, cmd.DisplayOrder); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.priorityRepo.Update(ctx, priority); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("priority name already exists")
		}
		return nil, err
	}

	return newPriorityResult(priority), nil
}

type DeletePriorityUseCase struct {
	priorityRepo catalog.PriorityRepository
	ticketRepo   ticket.Repository
	logger       logger.Interface
}

func NewDeletePriorityUseCase(
	priorityRepo catalog.PriorityRepository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeletePriorityUseCase {
	return &DeletePriorityUseCase{priorityRepo: priorityRepo, ticketRepo: ticketRepo, logger: logger}
}

func (uc *DeletePriorityUseCase) Execute(ctx context.Context, priorityID uint) error {
	priority, err := uc.priorityRepo.GetByID(ctx, priorityID)
	if err != nil {
		return err
	}
	if priority == nil {
		return errors.NewNotFoundError("priority not found")
	}

	count, err := uc.ticketRepo.CountByPriorityID(ctx, priorityID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError("priority is referenced by existing tickets")
	}

	if err := uc.priorityRepo.Delete(ctx, priorityID); err != nil {
		return err
	}

	uc.logger.Infow("priority deleted", "id", priorityID, "name", priority.Name())
	return nil
}

type ListPrioritiesCommand struct {
	Skip  int
	Limit int
}

type ListPrioritiesUseCase struct {
	priorityRepo catalog.PriorityRepository
	logger       logger.Interface
}

func NewListPrioritiesUseCase(priorityRepo catalog.PriorityRepository, logger logger.Interface) *ListPrioritiesUseCase {
	return &ListPrioritiesUseCase{priorityRepo: priorityRepo, logger: logger}
}

func (uc *ListPrioritiesUseCase) Execute(ctx context.Context, cmd ListPrioritiesCommand) ([]*PriorityResult, error) {
	p := utils.ValidatePagination(cmd.Skip, cmd.Limit)

	priorities, err := uc.priorityRepo.List(ctx, p.Skip, p.Limit)
	if err != nil {
		return nil, err
	}

	results := make([]*PriorityResult, 0, len(priorities))
	for _, p := range priorities {
		results = append(results, newPriorityResult(p))
	}
	return results, nil
}
