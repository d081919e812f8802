package usecases

import (
	"context"

	"deskhive/internal/application/user/dto"
	"deskhive/internal/domain/user"
	vo "deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type ListMembersQuery struct {
	Role     string
	Status   string
	Search   string
	Page     int
	PageSize int
}

type ListMembersResult struct {
	Members  []*dto.MemberDTO `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListMembersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListMembersUseCase(userRepo user.Repository, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, p authorization.Principal, query ListMembersQuery) (*ListMembersResult, error) {
	if !p.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can list members")
	}

	filter := user.ListFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Role != "" {
		role := authorization.Role(query.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role filter")
		}
		filter.Role = &role
	}
	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	members, total, err := uc.userRepo.List(ctx, p.OrganizationID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list members", "error", err, "organization_id", p.OrganizationID)
		return nil, err
	}

	return &ListMembersResult{
		Members:  dto.MembersToDTO(members),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
