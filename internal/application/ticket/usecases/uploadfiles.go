package usecases

import (
	"context"
	"io"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// FileUpload is one incoming multipart part.
type FileUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

type UploadFilesCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Files    []FileUpload
}

type UploadFilesUseCase struct {
	ticketRepo     ticket.Repository
	assignmentRepo ticket.AssignmentRepository
	fileRepo       ticket.FileRepository
	store          storage.Store
	logger         logger.Interface
}

func NewUploadFilesUseCase(
	ticketRepo ticket.Repository,
	assignmentRepo ticket.AssignmentRepository,
	fileRepo ticket.FileRepository,
	store storage.Store,
	logger logger.Interface,
) *UploadFilesUseCase {
	return &UploadFilesUseCase{
		ticketRepo:     ticketRepo,
		assignmentRepo: assignmentRepo,
		fileRepo:       fileRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *UploadFilesUseCase) Execute(ctx context.Context, cmd UploadFilesCommand) ([]*FileResult, error) {
	if len(cmd.Files) == 0 {
		return nil, errors.NewBadRequestError("no files provided")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := uc.checkFileAccess(ctx, cmd.Actor, t); err != nil {
		return nil, err
	}

	results := make([]*FileResult, 0, len(cmd.Files))
	for _, upload := range cmd.Files {
		storedPath, size, err := uc.store.Save(ctx, cmd.TicketID, upload.FileName, upload.Content)
		if err != nil {
			return nil, errors.NewInternalError("failed to store file")
		}

		record, err := ticket.NewFile(cmd.TicketID, upload.FileName, storedPath, upload.ContentType, size)
		if err != nil {
			if removeErr := uc.store.Remove(ctx, storedPath); removeErr != nil {
				uc.logger.Warnw("failed to remove rejected upload", "path", storedPath, "error", removeErr)
			}
			return nil, errors.NewValidationError(err.Error())
		}

		if err := uc.fileRepo.Save(ctx, record); err != nil {
			if removeErr := uc.store.Remove(ctx, storedPath); removeErr != nil {
				uc.logger.Warnw("failed to remove orphaned upload", "path", storedPath, "error", removeErr)
			}
			return nil, err
		}

		uc.logger.Infow("file uploaded",
			"ticket_id", cmd.TicketID,
			"file_id", record.ID(),
			"name", record.FileName(),
			"size", record.FileSize())
		results = append(results, newFileResult(record))
	}

	return results, nil
}

// checkFileAccess gates attachment operations: the ticket's author, an
// assigned technician, or an admin.
func (uc *UploadFilesUseCase) checkFileAccess(ctx context.Context, actor authorization.Actor, t *ticket.Ticket) error {
	return checkFileAccess(ctx, uc.assignmentRepo, actor, t)
}

func checkFileAccess(ctx context.Context, assignmentRepo ticket.AssignmentRepository, actor authorization.Actor, t *ticket.Ticket) error {
	if actor.Role.IsAdmin() || t.UserID() == actor.UserID {
		return nil
	}
	if actor.Role.IsTechnician() {
		assignment, err := assignmentRepo.GetByTicketAndTechnician(ctx, t.ID(), actor.UserID)
		if err != nil {
			return err
		}
		if assignment != nil {
			return nil
		}
	}
	return errors.NewForbiddenError("not allowed to manage files on this ticket")
}
