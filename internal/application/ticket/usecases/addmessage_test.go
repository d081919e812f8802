package usecases

import (
	"context"
	"testing"
	"time"

	"deskhive/internal/domain/ticket"
	vo "deskhive/internal/domain/ticket/valueobjects"
	"deskhive/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMessageUseCase_Execute_PostsToOwnTicket(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusInProgress)

	var notifiedAdminAuthor *bool
	notifier := &mockNotifier{
		NewMessageFunc: func(ctx context.Context, tk *ticket.Ticket, msg *ticket.Message, authorIsAdmin bool) {
			notifiedAdminAuthor = &authorIsAdmin
		},
	}

	uc := NewAddMessageUseCase(scopedTicketRepo(t, tk), &mockMessageRepository{}, notifier, &mockLogger{})

	result, err := uc.Execute(context.Background(), userPrincipal(7, 1), AddMessageCommand{
		TicketID:   10,
		Body:       "Any update on this?",
		AuthorName: "Ada Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", result.AuthorName)
	assert.Equal(t, uint(7), result.AuthorUserID)
	require.NotNil(t, notifiedAdminAuthor)
	assert.False(t, *notifiedAdminAuthor)
}

func TestAddMessageUseCase_Execute_ForeignTicketForbidden(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusInProgress)
	uc := NewAddMessageUseCase(scopedTicketRepo(t, tk), &mockMessageRepository{}, &mockNotifier{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), userPrincipal(8, 1), AddMessageCommand{
		TicketID: 10,
		Body:     "Let me hijack this thread.",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAddMessageUseCase_Execute_EmptyBody(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusInProgress)
	uc := NewAddMessageUseCase(scopedTicketRepo(t, tk), &mockMessageRepository{}, &mockNotifier{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), userPrincipal(7, 1), AddMessageCommand{
		TicketID: 10,
		Body:     "",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestListMessagesUseCase_Execute_RendersBodies(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusInProgress)

	first, err := ticket.ReconstructMessage(1, 10, 7, "Ada Lovelace", "**bold** claim", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	second, err := ticket.ReconstructMessage(2, 10, 9, "Grace Hopper", "agreed", time.Now())
	require.NoError(t, err)

	messageRepo := &mockMessageRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
			return []*ticket.Message{first, second}, nil
		},
	}

	uc := NewListMessagesUseCase(scopedTicketRepo(t, tk), messageRepo, &mockMarkdownRenderer{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), userPrincipal(7, 1), 10)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "<p>**bold** claim</p>", result[0].RenderedBody)
	assert.Equal(t, "**bold** claim", result[0].Body)
	assert.Equal(t, uint(1), result[0].ID)
}

func TestAddAttachmentUseCase_Execute_StoresFileAndMetadata(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusInProgress)

	var savedName string
	files := &mockFileStore{
		SaveFunc: func(ctx context.Context, filename string, content []byte) (string, error) {
			savedName = filename
			return "/uploads/abc123-" + filename, nil
		},
	}

	uc := NewAddAttachmentUseCase(scopedTicketRepo(t, tk), &mockAttachmentRepository{},
		files, 10*1024*1024, &mockLogger{})

	result, err := uc.Execute(context.Background(), userPrincipal(7, 1), AddAttachmentCommand{
		TicketID: 10,
		Filename: "screenshot.png",
		MimeType: "image/png",
		Content:  []byte("not really a png"),
	})

	require.NoError(t, err)
	assert.Equal(t, "screenshot.png", savedName)
	assert.Equal(t, "/uploads/abc123-screenshot.png", result.URL)
	assert.Equal(t, int64(len("not really a png")), result.Size)
	assert.Equal(t, uint(7), result.UploadedByUserID)
}

func TestAddAttachmentUseCase_Execute_SizeCap(t *testing.T) {
	tk := existingTicket(t, 10, 1, 1, 7, vo.StatusInProgress)
	uc := NewAddAttachmentUseCase(scopedTicketRepo(t, tk), &mockAttachmentRepository{},
		&mockFileStore{}, 16, &mockLogger{})

	result, err := uc.Execute(context.Background(), userPrincipal(7, 1), AddAttachmentCommand{
		TicketID: 10,
		Filename: "huge.bin",
		MimeType: "application/octet-stream",
		Content:  make([]byte, 17),
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
