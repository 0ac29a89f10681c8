package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

// FileRepository implements attachment metadata storage on gorm.
type FileRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewFileRepository(db *gorm.DB, logger logger.Interface) ticket.FileRepository {
	return &FileRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *FileRepository) Save(ctx context.Context, file *ticket.File) error {
	model := r.mapper.FileToModel(file)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create file record",
			"ticket_id", model.TicketID, "file_name", model.FileName, "error", err)
		return fmt.Errorf("failed to create file record: %w", err)
	}

	if err := file.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set file ID: %w", err)
	}

	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, fileID uint) (*ticket.File, error) {
	var model models.FileModel

	if err := r.db.WithContext(ctx).First(&model, fileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return r.mapper.FileToDomain(&model)
}

func (r *FileRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.File, error) {
	var fileModels []*models.FileModel

	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("uploaded_at ASC").
		Find(&fileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*ticket.File, 0, len(fileModels))
	for _, model := range fileModels {
		entity, err := r.mapper.FileToDomain(model)
		if err != nil {
			return nil, err
		}
		files = append(files, entity)
	}
	return files, nil
}

func (r *FileRepository) Delete(ctx context.Context, fileID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FileModel{}, fileID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete file record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.logger.Infow("file record deleted", "id", fileID)
	return nil
}
