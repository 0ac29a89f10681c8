package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateStatusCommand struct {
	Name         string
	DisplayOrder *int
	IsFinal      bool
}

type CreateStatusUseCase struct {
	statusRepo catalog.StatusRepository
	logger     logger.Interface
}

func NewCreateStatusUseCase(statusRepo catalog.StatusRepository, logger logger.Interface) *CreateStatusUseCase {
	return &CreateStatusUseCase{statusRepo: statusRepo, logger: logger}
}

func (uc *CreateStatusUseCase) Execute(ctx context.Context, cmd CreateStatusCommand) (*StatusResult, error) {
	existing, err := uc.statusRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("status name already exists")
	}

	status, err := catalog.NewStatus(cmd.Name, cmd.DisplayOrder, cmd.IsFinal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.statusRepo.Create(ctx, status); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("status name already exists")
		}
		return nil, err
	}

	uc.logger.Infow("status created", "id", status.ID(), "name", status.Name(), "is_final", status.IsFinal())
	return newStatusResult(status), nil
}

type UpdateStatusCommand struct {
	StatusID     uint
	Name         string
	DisplayOrder *int
	IsFinal      bool
}

type UpdateStatusUseCase struct {
	statusRepo catalog.StatusRepository
	logger     logger.Interface
}

func NewUpdateStatusUseCase(statusRepo catalog.StatusRepository, logger logger.Interface) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{statusRepo: statusRepo, logger: logger}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*StatusResult, error) {
	status, err := uc.statusRepo.GetByID(ctx, cmd.StatusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, errors.NewNotFoundError("status not found")
	}

	other, err := uc.statusRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID() != status.ID() {
		return nil, errors.NewConflictError("status name already exists")
	}

	if err := status.Update(cmd.Name, cmd.DisplayOrder, cmd.IsFinal); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.statusRepo.Update(ctx, status); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("status name already exists")
		}
		return nil, err
	}

	return newStatusResult(status), nil
}

type DeleteStatusUseCase struct {
	statusRepo catalog.StatusRepository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteStatusUseCase(
	statusRepo catalog.StatusRepository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeleteStatusUseCase {
	return &DeleteStatusUseCase{statusRepo: statusRepo, ticketRepo: ticketRepo, logger: logger}
}

func (uc *DeleteStatusUseCase) Execute(ctx context.Context, statusID uint) error {
	status, err := uc.statusRepo.GetByID(ctx, statusID)
	if err != nil {
		return err
	}
	if status == nil {
		return errors.NewNotFoundError("status not found")
	}

	count, err := uc.ticketRepo.CountByStatusID(ctx, statusID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError("status is referenced by existing tickets")
	}

	if err := uc.statusRepo.Delete(ctx, statusID); err != nil {
		return err
	}

	uc.logger.Infow("status deleted", "id", statusID, "name", status.Name())
	return nil
}

type ListStatusesCommand struct {
	Skip  int
	Limit int
}

type ListStatusesUseCase struct {
	statusRepo catalog.StatusRepository
	logger     logger.Interface
}

func NewListStatusesUseCase(statusRepo catalog.StatusRepository, logger logger.Interface) *ListStatusesUseCase {
	return &ListStatusesUseCase{statusRepo: statusRepo, logger: logger}
}

func (uc *ListStatusesUseCase) Execute(ctx context.Context, cmd ListStatusesCommand) ([]*StatusResult, error) {
	p := utils.ValidatePagination(cmd.Skip, cmd.Limit)

	statuses, err := uc.statusRepo.List(ctx, p.Skip, p.Limit)
	if err != nil {
		return nil, err
	}

	results := make([]*StatusResult, 0, len(statuses))
	for _, s := range statuses {
		results = append(results, newStatusResult(s))
	}
	return results, nil
}
