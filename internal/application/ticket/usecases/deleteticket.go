package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	fileRepo   ticket.FileRepository
	store      storage.Store
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	fileRepo ticket.FileRepository,
	store storage.Store,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, fileRepo: fileRepo, store: store, logger: logger}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if t == nil {
		return errors.NewNotFoundError("ticket not found")
	}

	if !cmd.Actor.Role.IsAdmin() && t.UserID() != cmd.Actor.UserID {
		return errors.NewForbiddenError("not allowed to delete this ticket")
	}

	files, err := uc.fileRepo.ListByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		return err
	}

	// Blob removal after the rows are gone; failures only leave orphan
	// files on disk.
	for _, f := range files {
		if err := uc.store.Remove(ctx, f.FilePath()); err != nil {
			uc.logger.Warnw("failed to remove attachment blob",
				"ticket_id", cmd.TicketID,
				"path", f.FilePath(),
				"error", err)
		}
	}

	uc.logger.Infow("ticket deleted", "id", cmd.TicketID, "actor_id", cmd.Actor.UserID)
	return nil
}
