package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

// allowedTicketOrderByFields whitelists ORDER BY columns to prevent
// SQL injection through the sort parameter. Keys map the exposed sort
// name to the actual column.
var allowedTicketOrderByFields = map[string]string{
	"ticket_id":   "id",
	"id":          "id",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
	"closed_at":   "closed_at",
	"status_id":   "status_id",
	"priority_id": "priority_id",
	"device_id":   "device_id",
	"user_id":     "user_id",
}

// TicketRepository implements the ticket repository on gorm.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Save(ctx context.Context, ticketEntity *ticket.Ticket) error {
	model := r.mapper.ToModel(ticketEntity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := ticketEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	r.logger.Infow("ticket created", "id", model.ID, "user_id", model.UserID, "device_id", model.DeviceID)
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, ticketEntity *ticket.Ticket) error {
	model := r.mapper.ToModel(ticketEntity)

	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"device_id":        model.DeviceID,
			"description":      model.Description,
			"priority_id":      model.PriorityID,
			"status_id":        model.StatusID,
			"resolution_notes": model.ResolutionNotes,
			"closed_at":        model.ClosedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TechnicianAssignmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket assignments: %w", err)
		}
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.FileModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket files: %w", err)
		}

		result := tx.Delete(&models.TicketModel{}, ticketID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			r.logger.Errorw("failed to delete ticket", "id", ticketID, "error", err)
		}
		return err
	}

	r.logger.Infow("ticket deleted", "id", ticketID)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket by ID", "id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ticketDetailRow is the scan target for the joined detail query.
type ticketDetailRow struct {
	ID              uint
	DeviceID        uint
	UserID          uint
	Description     string
	PriorityID      uint
	StatusID        uint
	ResolutionNotes *string
	CreatedAt       int64
	UpdatedAt       int64
	ClosedAt        *int64
	AuthorUsername        string
	AuthorFirstName       *string
	AuthorLastName        *string
	AuthorEmail           *string
	DeviceName            string
	DeviceInventoryNumber *string
	StatusName            string
	StatusIsFinal         bool
	PriorityName          string
}

func (r *TicketRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("tickets").
		Select(`tickets.id, tickets.device_id, tickets.user_id, tickets.description,
			tickets.priority_id, tickets.status_id, tickets.resolution_notes,
			tickets.created_at, tickets.updated_at, tickets.closed_at,
			users.username AS author_username,
			users.first_name AS author_first_name,
			users.last_name AS author_last_name,
			users.email AS author_email,
			devices.name AS device_name,
			devices.inventory_number AS device_inventory_number,
			statuses.name AS status_name,
			statuses.is_final AS status_is_final,
			priorities.name AS priority_name`).
		Joins("JOIN users ON users.id = tickets.user_id").
		Joins("JOIN devices ON devices.id = tickets.device_id").
		Joins("JOIN statuses ON statuses.id = tickets.status_id").
		Joins("JOIN priorities ON priorities.id = tickets.priority_id")
}

func (r *TicketRepository) rowToDetail(row *ticketDetailRow) (*ticket.Detail, error) {
	var closedAt *time.Time
	if row.ClosedAt != nil {
		closed := time.UnixMilli(*row.ClosedAt)
		closedAt = &closed
	}

	entity, err := ticket.ReconstructTicket(
		row.ID,
		row.DeviceID,
		row.UserID,
		row.Description,
		row.PriorityID,
		row.StatusID,
		row.ResolutionNotes,
		time.UnixMilli(row.CreatedAt),
		time.UnixMilli(row.UpdatedAt),
		closedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket: %w", err)
	}

	return &ticket.Detail{
		Ticket:                entity,
		AuthorUsername:        row.AuthorUsername,
		AuthorFullName:        joinName(row.AuthorFirstName, row.AuthorLastName, row.AuthorUsername),
		AuthorEmail:           row.AuthorEmail,
		DeviceName:            row.DeviceName,
		DeviceInventoryNumber: row.DeviceInventoryNumber,
		StatusName:            row.StatusName,
		StatusIsFinal:         row.StatusIsFinal,
		PriorityName:          row.PriorityName,
	}, nil
}

func (r *TicketRepository) GetDetail(ctx context.Context, ticketID uint) (*ticket.Detail, error) {
	var row ticketDetailRow

	err := r.detailQuery(ctx).Where("tickets.id = ?", ticketID).Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket detail", "id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket detail: %w", err)
	}

	detail, err := r.rowToDetail(&row)
	if err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, []*ticket.Detail{detail}); err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	var ticketModels []*models.TicketModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.TicketModel{})
	query = applyTicketFilter(query, filter, "")

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = applyTicketOrder(query, filter, "")
	query = query.Offset(filter.Skip).Limit(filter.Limit)

	if err := query.Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, entity)
	}

	return tickets, total, nil
}

func (r *TicketRepository) ListDetails(ctx context.Context, filter ticket.Filter) ([]*ticket.Detail, int64, error) {
	var total int64

	countQuery := r.db.WithContext(ctx).Model(&models.TicketModel{})
	countQuery = applyTicketFilter(countQuery, filter, "")
	if err := countQuery.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query := r.detailQuery(ctx)
	query = applyTicketFilter(query, filter, "tickets.")
	query = applyTicketOrder(query, filter, "tickets.")
	query = query.Offset(filter.Skip).Limit(filter.Limit)

	var rows []*ticketDetailRow
	if err := query.Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list ticket details", "error", err)
		return nil, 0, fmt.Errorf("failed to list ticket details: %w", err)
	}

	details := make([]*ticket.Detail, 0, len(rows))
	for _, row := range rows {
		detail, err := r.rowToDetail(row)
		if err != nil {
			return nil, 0, err
		}
		details = append(details, detail)
	}

	if err := r.loadRelations(ctx, details); err != nil {
		return nil, 0, err
	}

	return details, total, nil
}

// loadRelations populates assignments and files for the given details
// in two batched queries.
func (r *TicketRepository) loadRelations(ctx context.Context, details []*ticket.Detail) error {
	if len(details) == 0 {
		return nil
	}

	ticketIDs := make([]uint, 0, len(details))
	byID := make(map[uint]*ticket.Detail, len(details))
	for _, d := range details {
		ticketIDs = append(ticketIDs, d.Ticket.ID())
		byID[d.Ticket.ID()] = d
	}

	type assignmentRow struct {
		ID                 uint
		TicketID           uint
		TechnicianID       uint
		AssignedAt         int64
		TechnicianUsername string
		TechnicianFirst    *string
		TechnicianLast     *string
	}

	var assignmentRows []*assignmentRow
	err := r.db.WithContext(ctx).
		Table("technician_assignments").
		Select(`technician_assignments.id, technician_assignments.ticket_id,
			technician_assignments.technician_id, technician_assignments.assigned_at,
			users.username AS technician_username,
			users.first_name AS technician_first,
			users.last_name AS technician_last`).
		Joins("JOIN users ON users.id = technician_assignments.technician_id").
		Where("technician_assignments.ticket_id IN ?", ticketIDs).
		Order("technician_assignments.assigned_at ASC").
		Scan(&assignmentRows).Error
	if err != nil {
		r.logger.Errorw("failed to load ticket assignments", "error", err)
		return fmt.Errorf("failed to load assignments: %w", err)
	}

	for _, row := range assignmentRows {
		assignment, err := ticket.ReconstructTechnicianAssignment(
			row.ID, row.TicketID, row.TechnicianID, time.UnixMilli(row.AssignedAt))
		if err != nil {
			return err
		}
		detail := byID[row.TicketID]
		if detail == nil {
			continue
		}
		detail.Assignments = append(detail.Assignments, &ticket.AssignmentDetail{
			Assignment:         assignment,
			TechnicianUsername: row.TechnicianUsername,
			TechnicianFullName: joinName(row.TechnicianFirst, row.TechnicianLast, row.TechnicianUsername),
		})
	}

	var fileModels []*models.FileModel
	if err := r.db.WithContext(ctx).
		Where("ticket_id IN ?", ticketIDs).
		Order("uploaded_at ASC").
		Find(&fileModels).Error; err != nil {
		r.logger.Errorw("failed to load ticket files", "error", err)
		return fmt.Errorf("failed to load files: %w", err)
	}

	for _, model := range fileModels {
		file, err := r.mapper.FileToDomain(model)
		if err != nil {
			return err
		}
		if detail := byID[model.TicketID]; detail != nil {
			detail.Files = append(detail.Files, file)
		}
	}

	return nil
}

func (r *TicketRepository) CountByDeviceID(ctx context.Context, deviceID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("device_id = ?", deviceID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by device: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountByStatusID(ctx context.Context, statusID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("status_id = ?", statusID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountByPriorityID(ctx context.Context, priorityID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("priority_id = ?", priorityID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by priority: %w", err)
	}
	return count, nil
}

// applyTicketFilter adds the filter's WHERE clauses. prefix qualifies
// column names when the query joins other tables.
func applyTicketFilter(query *gorm.DB, filter ticket.Filter, prefix string) *gorm.DB {
	if filter.StatusID != nil {
		query = query.Where(prefix+"status_id = ?", *filter.StatusID)
	}
	if filter.PriorityID != nil {
		query = query.Where(prefix+"priority_id = ?", *filter.PriorityID)
	}
	if filter.DeviceID != nil {
		query = query.Where(prefix+"device_id = ?", *filter.DeviceID)
	}
	if filter.UserID != nil {
		query = query.Where(prefix+"user_id = ?", *filter.UserID)
	}
	if filter.TechnicianID != nil {
		sub := "SELECT ticket_id FROM technician_assignments WHERE technician_id = ?"
		query = query.Where(prefix+"id IN ("+sub+")", *filter.TechnicianID)
	}
	if filter.StartDate != nil {
		query = query.Where(prefix+"created_at >= ?", filter.StartDate.UnixMilli())
	}
	if filter.EndDate != nil {
		query = query.Where(prefix+"created_at <= ?", filter.EndDate.UnixMilli())
	}
	if filter.Search != "" {
		query = query.Where("LOWER("+prefix+"description) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	return query
}

func applyTicketOrder(query *gorm.DB, filter ticket.Filter, prefix string) *gorm.DB {
	column, ok := allowedTicketOrderByFields[filter.SortBy]
	if !ok {
		return query.Order(prefix + "created_at DESC")
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	return query.Order(fmt.Sprintf("%s%s %s", prefix, column, order))
}

// joinName builds a display name from optional first/last names with a
// username fallback.
func joinName(first, last *string, fallback string) string {
	parts := make([]string, 0, 2)
	if first != nil && *first != "" {
		parts = append(parts, *first)
	}
	if last != nil && *last != "" {
		parts = append(parts, *last)
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, " ")
}
