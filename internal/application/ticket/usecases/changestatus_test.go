package usecases

import (
	"context"
	"testing"

	"deskhive/internal/domain/ticket"
	vo "deskhive/internal/domain/ticket/valueobjects"
	"deskhive/internal/domain/user"
	uservo "deskhive/internal/domain/user/valueobjects"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeTicketStatusUseCase_Execute_ResolvedStampsOnce(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusInProgress)

	notifyCount := 0
	notifier := &mockNotifier{
		TicketStatusChangedFunc: func(ctx context.Context, tk *ticket.Ticket) {
			notifyCount++
		},
	}

	uc := NewChangeTicketStatusUseCase(scopedTicketRepo(t, tk), notifier, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeTicketStatusCommand{
		TicketID: 10,
		Status:   "RESOLVED",
	})
	require.NoError(t, err)
	require.NotNil(t, result.ResolvedAt)
	first := *result.ResolvedAt

	// Resolving again keeps the original timestamp.
	result, err = uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeTicketStatusCommand{
		TicketID: 10,
		Status:   "RESOLVED",
	})
	require.NoError(t, err)
	assert.Equal(t, first, *result.ResolvedAt)
	assert.Equal(t, 2, notifyCount)
}

func TestChangeTicketStatusUseCase_Execute_ReopenClearsTimestamps(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusNew)
	uc := NewChangeTicketStatusUseCase(scopedTicketRepo(t, tk), &mockNotifier{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeTicketStatusCommand{TicketID: 10, Status: "RESOLVED"})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeTicketStatusCommand{TicketID: 10, Status: "CLOSED"})
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeTicketStatusCommand{TicketID: 10, Status: "NEW"})
	require.NoError(t, err)
	assert.Nil(t, result.ResolvedAt)
	assert.Nil(t, result.ClosedAt)
}

func TestChangeTicketStatusUseCase_Execute_InvalidStatus(t *testing.T) {
	uc := NewChangeTicketStatusUseCase(&mockTicketRepository{}, &mockNotifier{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), ChangeTicketStatusCommand{
		TicketID: 10,
		Status:   "ARCHIVED",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignTicketUseCase_Execute_AdminOnly(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusNew)
	uc := NewAssignTicketUseCase(scopedTicketRepo(t, tk), &mockUserReader{}, &mockNotifier{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), userPrincipal(7, 1), AssignTicketCommand{TicketID: 10})

	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAssignTicketUseCase_Execute_SuspendedAdminAccepted(t *testing.T) {
	// Assignment checks the target's role but, unlike creation, not their
	// ACTIVE status.
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusNew)
	adminID := uint(9)
	userRepo := &mockUserReader{
		GetByIDFunc: func(ctx context.Context, id, organizationID uint) (*user.User, error) {
			return member(t, 9, 1, authorization.RoleAdmin, uservo.StatusSuspended), nil
		},
	}

	var notifiedAssignee uint
	notifier := &mockNotifier{
		TicketAssignedFunc: func(ctx context.Context, tk *ticket.Ticket, assigneeID uint) {
			notifiedAssignee = assigneeID
		},
	}

	uc := NewAssignTicketUseCase(scopedTicketRepo(t, tk), userRepo, notifier, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), AssignTicketCommand{
		TicketID:        10,
		AssignedAdminID: &adminID,
	})

	require.NoError(t, err)
	require.NotNil(t, result.AssignedAdminID)
	assert.Equal(t, adminID, *result.AssignedAdminID)
	assert.Equal(t, adminID, notifiedAssignee)
}

func TestAssignTicketUseCase_Execute_NonAdminTargetRejected(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusNew)
	adminID := uint(9)
	userRepo := &mockUserReader{
		GetByIDFunc: func(ctx context.Context, id, organizationID uint) (*user.User, error) {
			return member(t, 9, 1, authorization.RoleUser, uservo.StatusActive), nil
		},
	}

	uc := NewAssignTicketUseCase(scopedTicketRepo(t, tk), userRepo, &mockNotifier{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), AssignTicketCommand{
		TicketID:        10,
		AssignedAdminID: &adminID,
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsBadRequestError(err))
}

func TestAssignTicketUseCase_Execute_ClearAssignment(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusNew)
	nine := uint(9)
	tk.Assign(&nine)

	notified := false
	notifier := &mockNotifier{
		TicketAssignedFunc: func(ctx context.Context, tk *ticket.Ticket, assigneeID uint) {
			notified = true
		},
	}

	uc := NewAssignTicketUseCase(scopedTicketRepo(t, tk), &mockUserReader{}, notifier, &mockLogger{})

	result, err := uc.Execute(context.Background(), adminPrincipal(1, 1), AssignTicketCommand{
		TicketID:        10,
		AssignedAdminID: nil,
	})

	require.NoError(t, err)
	assert.Nil(t, result.AssignedAdminID)
	assert.False(t, notified)
}

func TestDeleteTicketUseCase_Execute_CascadesInOneTransaction(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusClosed)

	var order []string
	messageRepo := &mockMessageRepository{
		DeleteByTicketIDFunc: func(ctx context.Context, ticketID uint) error {
			order = append(order, "messages")
			return nil
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		DeleteByTicketIDFunc: func(ctx context.Context, ticketID uint) error {
			order = append(order, "attachments")
			return nil
		},
	}
	notificationRepo := &mockNotificationCleaner{
		DeleteByTicketIDFunc: func(ctx context.Context, ticketID uint) error {
			order = append(order, "notifications")
			return nil
		},
	}
	ticketRepo := scopedTicketRepo(t, tk)
	ticketRepo.DeleteFunc = func(ctx context.Context, id uint) error {
		order = append(order, "ticket")
		return nil
	}

	uc := NewDeleteTicketUseCase(ticketRepo, messageRepo, attachmentRepo, notificationRepo,
		&mockTransactionManager{}, &mockLogger{})

	err := uc.Execute(context.Background(), adminPrincipal(1, 1), 10)

	require.NoError(t, err)
	assert.Equal(t, []string{"messages", "attachments", "notifications", "ticket"}, order)
}

func TestDeleteTicketUseCase_Execute_AdminOnly(t *testing.T) {
	uc := NewDeleteTicketUseCase(&mockTicketRepository{}, &mockMessageRepository{},
		&mockAttachmentRepository{}, &mockNotificationCleaner{},
		&mockTransactionManager{}, &mockLogger{})

	err := uc.Execute(context.Background(), userPrincipal(7, 1), 10)

	assert.True(t, errors.IsForbiddenError(err))
}
