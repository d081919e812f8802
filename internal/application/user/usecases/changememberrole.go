package usecases

import (
	"context"

	"deskhive/internal/application/user/dto"
	"deskhive/internal/domain/user"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
	"deskhive/internal/shared/logger"
)

type ChangeMemberRoleCommand struct {
	MemberID uint
	Role     string
}

type ChangeMemberRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangeMemberRoleUseCase(userRepo user.Repository, logger logger.Interface) *ChangeMemberRoleUseCase {
	return &ChangeMemberRoleUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ChangeMemberRoleUseCase) Execute(ctx context.Context, p authorization.Principal, cmd ChangeMemberRoleCommand) (*dto.MemberDTO, error) {
	if !p.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can change roles")
	}

	role := authorization.Role(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}

	if cmd.MemberID == p.UserID && role != authorization.RoleAdmin {
		return nil, errors.NewBadRequestError("administrators cannot demote themselves")
	}

	m, err := uc.userRepo.GetByID(ctx, cmd.MemberID, p.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "error", err, "member_id", cmd.MemberID)
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := m.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to change member role", "error", err, "member_id", m.ID())
		return nil, err
	}

	uc.logger.Infow("member role changed",
		"organization_id", p.OrganizationID,
		"member_id", m.ID(),
		"role", role.String(),
		"changed_by", p.UserID)

	return dto.MemberToDTO(m), nil
}
