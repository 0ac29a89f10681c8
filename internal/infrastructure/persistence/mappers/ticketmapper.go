package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	AssignmentToModel(a *ticket.TechnicianAssignment) *models.TechnicianAssignmentModel
	AssignmentToDomain(model *models.TechnicianAssignmentModel) (*ticket.TechnicianAssignment, error)
	FileToModel(f *ticket.File) *models.FileModel
	FileToDomain(model *models.FileModel) (*ticket.File, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:              t.ID(),
		DeviceID:        t.DeviceID(),
		UserID:          t.UserID(),
		Description:     t.Description(),
		PriorityID:      t.PriorityID(),
		StatusID:        t.StatusID(),
		ResolutionNotes: t.ResolutionNotes(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var closedAt *time.Time
	if model.ClosedAt != nil {
		closed := time.UnixMilli(*model.ClosedAt)
		closedAt = &closed
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.DeviceID,
		model.UserID,
		model.Description,
		model.PriorityID,
		model.StatusID,
		model.ResolutionNotes,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		closedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket: %w", err)
	}
	return entity, nil
}

func (m *TicketMapperImpl) AssignmentToModel(a *ticket.TechnicianAssignment) *models.TechnicianAssignmentModel {
	return &models.TechnicianAssignmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		TechnicianID: a.TechnicianID(),
		AssignedAt:   a.AssignedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AssignmentToDomain(model *models.TechnicianAssignmentModel) (*ticket.TechnicianAssignment, error) {
	entity, err := ticket.ReconstructTechnicianAssignment(
		model.ID,
		model.TicketID,
		model.TechnicianID,
		time.UnixMilli(model.AssignedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct assignment: %w", err)
	}
	return entity, nil
}

func (m *TicketMapperImpl) FileToModel(f *ticket.File) *models.FileModel {
	return &models.FileModel{
		ID:         f.ID(),
		TicketID:   f.TicketID(),
		FileName:   f.FileName(),
		FilePath:   f.FilePath(),
		FileType:   f.FileType(),
		FileSize:   f.FileSize(),
		UploadedAt: f.UploadedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) FileToDomain(model *models.FileModel) (*ticket.File, error) {
	entity, err := ticket.ReconstructFile(
		model.ID,
		model.TicketID,
		model.FileName,
		model.FilePath,
		model.FileType,
		model.FileSize,
		time.UnixMilli(model.UploadedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct file: %w", err)
	}
	return entity, nil
}
