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

type ChangeMemberStatusCommand struct {
	MemberID uint
	Status   string
}

// ChangeMemberStatusUseCase sets a member's lifecycle state. Suspension and
// deletion also revoke every active session of the member; the revocation is
// best effort and does not fail the status change.
type ChangeMemberStatusUseCase struct {
	userRepo    user.Repository
	refreshRepo user.RefreshTokenRepository
	logger      logger.Interface
}

func NewChangeMemberStatusUseCase(
	userRepo user.Repository,
	refreshRepo user.RefreshTokenRepository,
	logger logger.Interface,
) *ChangeMemberStatusUseCase {
	return &ChangeMemberStatusUseCase{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		logger:      logger,
	}
}

func (uc *ChangeMemberStatusUseCase) Execute(ctx context.Context, p authorization.Principal, cmd ChangeMemberStatusCommand) (*dto.MemberDTO, error) {
	if !p.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can change member status")
	}

	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.MemberID == p.UserID {
		return nil, errors.NewBadRequestError("administrators cannot change their own status")
	}

	m, err := uc.userRepo.GetByID(ctx, cmd.MemberID, p.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "error", err, "member_id", cmd.MemberID)
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := m.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to change member status", "error", err, "member_id", m.ID())
		return nil, err
	}

	if status == vo.StatusSuspended || status == vo.StatusDeleted {
		if err := uc.refreshRepo.DeleteByUserID(ctx, m.ID()); err != nil {
			uc.logger.Errorw("failed to revoke member sessions", "error", err, "member_id", m.ID())
		}
	}

	uc.logger.Infow("member status changed",
		"organization_id", p.OrganizationID,
		"member_id", m.ID(),
		"status", status.String(),
		"changed_by", p.UserID)

	return dto.MemberToDTO(m), nil
}
