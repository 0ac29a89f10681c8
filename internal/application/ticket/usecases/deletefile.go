package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteFileCommand struct {
	Actor    authorization.Actor
	TicketID uint
	FileID   uint
}

type DeleteFileUseCase struct {
	ticketRepo     ticket.Repository
	assignmentRepo ticket.AssignmentRepository
	fileRepo       ticket.FileRepository
	store          storage.Store
	logger         logger.Interface
}

func NewDeleteFileUseCase(
	ticketRepo ticket.Repository,
	assignmentRepo ticket.AssignmentRepository,
	fileRepo ticket.FileRepository,
	store storage.Store,
	logger logger.Interface,
) *DeleteFileUseCase {
	return &DeleteFileUseCase{
		ticketRepo:     ticketRepo,
		assignmentRepo: assignmentRepo,
		fileRepo:       fileRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *DeleteFileUseCase) Execute(ctx context.Context, cmd DeleteFileCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if t == nil {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := checkFileAccess(ctx, uc.assignmentRepo, cmd.Actor, t); err != nil {
		return err
	}

	record, err := uc.fileRepo.GetByID(ctx, cmd.FileID)
	if err != nil {
		return err
	}
	if record == nil {
		return errors.NewNotFoundError("file not found")
	}
	if record.TicketID() != cmd.TicketID {
		return errors.NewBadRequestError("file does not belong to this ticket")
	}

	// Disk removal is best effort; the metadata row always goes.
	if err := uc.store.Remove(ctx, record.FilePath()); err != nil {
		uc.logger.Warnw("failed to remove attachment blob",
			"ticket_id", cmd.TicketID,
			"file_id", cmd.FileID,
			"path", record.FilePath(),
			"error", err)
	}

	if err := uc.fileRepo.Delete(ctx, cmd.FileID); err != nil {
		return err
	}

	uc.logger.Infow("file deleted", "ticket_id", cmd.TicketID, "file_id", cmd.FileID, "actor_id", cmd.Actor.UserID)
	return nil
}
