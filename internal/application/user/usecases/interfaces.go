package usecases

import (
	"context"

	"deskhive/internal/application/user/dto"
	"deskhive/internal/domain/user"
	"deskhive/internal/shared/authorization"
)

// Notifier delivers the user-approved side effect. Best effort; never fails
// the approval.
type Notifier interface {
	UserApproved(ctx context.Context, u *user.User)
}

type ListMembersExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, query ListMembersQuery) (*ListMembersResult, error)
}

type GetMemberExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, memberID uint) (*dto.MemberDTO, error)
}

type ApproveMemberExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, memberID uint) (*dto.MemberDTO, error)
}

type ChangeMemberRoleExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, cmd ChangeMemberRoleCommand) (*dto.MemberDTO, error)
}

type ChangeMemberStatusExecutor interface {
	Execute(ctx context.Context, p authorization.Principal, cmd ChangeMemberStatusCommand) (*dto.MemberDTO, error)
}
