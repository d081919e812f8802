package usecases

import (
	"context"

	"deskhive/internal/application/ticket/dto"
	"deskhive/internal/domain/ticket"
	vo "deskhive/internal/domain/ticket/valueobjects"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status          string
	Priority        string
	Type            string
	AssignedAdminID *uint
	Search          string
	SortBy          string
	SortOrder       string
	Page            int
	PageSize        int
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO `json:"tickets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, p authorization.Principal, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		AssignedAdminID: query.AssignedAdminID,
		Search:          query.Search,
		SortBy:          query.SortBy,
		SortOrder:       query.SortOrder,
		Page:            query.Page,
		PageSize:        query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.Type != "" {
		ticketType, err := vo.NewType(query.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Type = &ticketType
	}

	// Non-admins only ever see their own tickets, whatever they asked for.
	if !p.IsAdmin() {
		userID := p.UserID
		filter.CreatedByUserID = &userID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	tickets, total, err := uc.ticketRepo.List(ctx, p.OrganizationID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "organization_id", p.OrganizationID)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets:  dto.TicketsToDTO(tickets),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
