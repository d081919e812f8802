package usecases

import (
	"context"

	"deskhive/internal/application/user/dto"
	"deskhive/internal/domain/user"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type GetMemberUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetMemberUseCase(userRepo user.Repository, logger logger.Interface) *GetMemberUseCase {
	return &GetMemberUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetMemberUseCase) Execute(ctx context.Context, p authorization.Principal, memberID uint) (*dto.MemberDTO, error) {
	if !p.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can view members")
	}

	m, err := uc.userRepo.GetByID(ctx, memberID, p.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "error", err, "member_id", memberID)
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return dto.MemberToDTO(m), nil
}
