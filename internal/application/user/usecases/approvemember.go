package usecases

import (
	"context"

	"deskhive/internal/application/user/dto"
	"deskhive/internal/domain/user"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

// ApproveMemberUseCase moves a PENDING member to ACTIVE and fires the
// user-approved notification.
type ApproveMemberUseCase struct {
	userRepo user.Repository
	notifier Notifier
	logger   logger.Interface
}

func NewApproveMemberUseCase(
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *ApproveMemberUseCase {
	return &ApproveMemberUseCase{userRepo: userRepo, notifier: notifier, logger: logger}
}

func (uc *ApproveMemberUseCase) Execute(ctx context.Context, p authorization.Principal, memberID uint) (*dto.MemberDTO, error) {
	if !p.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can approve members")
	}

	m, err := uc.userRepo.GetByID(ctx, memberID, p.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "error", err, "member_id", memberID)
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := m.Approve(); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to approve member", "error", err, "member_id", m.ID())
		return nil, err
	}

	uc.logger.Infow("member approved",
		"organization_id", p.OrganizationID,
		"member_id", m.ID(),
		"approved_by", p.UserID)

	uc.notifier.UserApproved(ctx, m)

	return dto.MemberToDTO(m), nil
}
