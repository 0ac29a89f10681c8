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

// AssignmentRepository implements technician assignments on gorm.
type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewAssignmentRepository(db *gorm.DB, logger logger.Interface) ticket.AssignmentRepository {
	return &AssignmentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *AssignmentRepository) Save(ctx context.Context, assignment *ticket.TechnicianAssignment) error {
	model := r.mapper.AssignmentToModel(assignment)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create assignment",
			"ticket_id", model.TicketID, "technician_id", model.TechnicianID, "error", err)
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	if err := assignment.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set assignment ID: %w", err)
	}

	r.logger.Infow("technician assigned",
		"ticket_id", model.TicketID, "technician_id", model.TechnicianID)
	return nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, assignmentID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TechnicianAssignmentModel{}, assignmentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AssignmentRepository) DeleteByTicketAndTechnician(ctx context.Context, ticketID, technicianID uint) error {
	result := r.db.WithContext(ctx).
		Where("ticket_id = ? AND technician_id = ?", ticketID, technicianID).
		Delete(&models.TechnicianAssignmentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.logger.Infow("technician unassigned", "ticket_id", ticketID, "technician_id", technicianID)
	return nil
}

func (r *AssignmentRepository) GetByTicketAndTechnician(ctx context.Context, ticketID, technicianID uint) (*ticket.TechnicianAssignment, error) {
	var model models.TechnicianAssignmentModel

	err := r.db.WithContext(ctx).
		Where("ticket_id = ? AND technician_id = ?", ticketID, technicianID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return r.mapper.AssignmentToDomain(&model)
}

func (r *AssignmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.TechnicianAssignment, error) {
	var assignmentModels []*models.TechnicianAssignmentModel

	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("assigned_at ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*ticket.TechnicianAssignment, 0, len(assignmentModels))
	for _, model := range assignmentModels {
		entity, err := r.mapper.AssignmentToDomain(model)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, entity)
	}
	return assignments, nil
}
