package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListTicketsCommand struct {
	Actor      authorization.Actor
	StatusID   *uint
	PriorityID *uint
	DeviceID   *uint
	UserID     *uint
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	// AssignedToMe restricts the listing to tickets the actor is
	// assigned to.
	AssignedToMe bool
	Skip         int
	Limit        int
	SortBy       string
	// SortDesc defaults to true when nil.
	SortDesc *bool
}

type ListTicketsResult struct {
	Tickets []*TicketResult
	Total   int64
	Skip    int
	Limit   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	p := utils.ValidatePagination(cmd.Skip, cmd.Limit)

	sortOrder := "desc"
	if cmd.SortDesc != nil && !*cmd.SortDesc {
		sortOrder = "asc"
	}

	filter := ticket.Filter{
		StatusID:   cmd.StatusID,
		PriorityID: cmd.PriorityID,
		DeviceID:   cmd.DeviceID,
		UserID:     cmd.UserID,
		StartDate:  cmd.StartDate,
		EndDate:    cmd.EndDate,
		Search:     cmd.Search,
		Skip:       p.Skip,
		Limit:      p.Limit,
		SortBy:     cmd.SortBy,
		SortOrder:  sortOrder,
	}

	if cmd.AssignedToMe {
		self := cmd.Actor.UserID
		filter.TechnicianID = &self
	}

	details, total, err := uc.ticketRepo.ListDetails(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]*TicketResult, 0, len(details))
	for _, d := range details {
		results = append(results, newTicketResult(d))
	}

	return &ListTicketsResult{
		Tickets: results,
		Total:   total,
		Skip:    p.Skip,
		Limit:   p.Limit,
	}, nil
}
