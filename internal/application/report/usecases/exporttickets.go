// Package usecases builds administrative reports over the ticket data.
package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const timestampLayout = "2006-01-02 15:04:05"

var csvHeader = []string{
	"ticket_id",
	"created_at",
	"updated_at",
	"closed_at",
	"user_id",
	"user_email",
	"user_name",
	"device_id",
	"device_name",
	"inventory_number",
	"description",
	"priority_id",
	"priority_name",
	"status_id",
	"status_name",
	"resolution_notes",
}

type ExportTicketsCommand struct {
	StatusID   *uint
	PriorityID *uint
	UserID     *uint
	DeviceID   *uint
	StartDate  *time.Time
	EndDate    *time.Time
}

type ExportTicketsResult struct {
	FileName string
	Content  []byte
}

type ExportTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewExportTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ExportTicketsUseCase) Execute(ctx context.Context, cmd ExportTicketsCommand) (*ExportTicketsResult, error) {
	details, _, err := uc.ticketRepo.ListDetails(ctx, ticket.Filter{
		StatusID:   cmd.StatusID,
		PriorityID: cmd.PriorityID,
		UserID:     cmd.UserID,
		DeviceID:   cmd.DeviceID,
		StartDate:  cmd.StartDate,
		EndDate:    cmd.EndDate,
		Limit:      constants.ExportLimit,
		SortBy:     "created_at",
		SortOrder:  "desc",
	})
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, errors.NewNotFoundError("no tickets match the report filters")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, d := range details {
		if err := w.Write(detailToRow(d)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	uc.logger.Infow("ticket report exported", "rows", len(details))

	return &ExportTicketsResult{
		FileName: fmt.Sprintf("ticket_report_%s.csv", time.Now().Format("2006-01-02_150405")),
		Content:  buf.Bytes(),
	}, nil
}

func detailToRow(d *ticket.Detail) []string {
	t := d.Ticket

	closedAt := ""
	if t.ClosedAt() != nil {
		closedAt = t.ClosedAt().Format(timestampLayout)
	}
	email := ""
	if d.AuthorEmail != nil {
		email = *d.AuthorEmail
	}
	inventory := ""
	if d.DeviceInventoryNumber != nil {
		inventory = *d.DeviceInventoryNumber
	}
	notes := ""
	if t.ResolutionNotes() != nil {
		notes = *t.ResolutionNotes()
	}

	return []string{
		strconv.FormatUint(uint64(t.ID()), 10),
		t.CreatedAt().Format(timestampLayout),
		t.UpdatedAt().Format(timestampLayout),
		closedAt,
		strconv.FormatUint(uint64(t.UserID()), 10),
		email,
		d.AuthorFullName,
		strconv.FormatUint(uint64(t.DeviceID()), 10),
		d.DeviceName,
		inventory,
		t.Description(),
		strconv.FormatUint(uint64(t.PriorityID()), 10),
		d.PriorityName,
		strconv.FormatUint(uint64(t.StatusID()), 10),
		d.StatusName,
		notes,
	}
}
