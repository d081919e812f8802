package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "deskhive/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tkt, err := NewTicket(1, "Printer on fire", "The third-floor printer is emitting smoke", vo.TypeIncident, vo.PriorityHigh, "Jane Doe", "jane@example.com", 42)
	require.NoError(t, err)
	return tkt
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*string, *string)
		orgID   uint
		creator uint
		wantErr string
	}{
		{name: "valid", orgID: 1, creator: 42},
		{name: "missing organization", orgID: 0, creator: 42, wantErr: "organization ID is required"},
		{name: "missing creator", orgID: 1, creator: 0, wantErr: "creator ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tkt, err := NewTicket(tt.orgID, "title", "description", vo.TypeRequest, vo.PriorityLow, "", "", tt.creator)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusNew, tkt.Status())
			assert.Nil(t, tkt.ResolvedAt())
			assert.Nil(t, tkt.ClosedAt())
		})
	}
}

func TestNewTicket_FieldLimits(t *testing.T) {
	longTitle := strings.Repeat("x", 201)
	_, err := NewTicket(1, longTitle, "d", vo.TypeRequest, vo.PriorityLow, "", "", 1)
	assert.ErrorContains(t, err, "title exceeds maximum length")

	longDesc := strings.Repeat("x", 5001)
	_, err = NewTicket(1, "t", longDesc, vo.TypeRequest, vo.PriorityLow, "", "", 1)
	assert.ErrorContains(t, err, "description exceeds maximum length")

	_, err = NewTicket(1, "t", "d", vo.Type("BANANA"), vo.PriorityLow, "", "", 1)
	assert.ErrorContains(t, err, "invalid ticket type")
}

func TestFormatKey(t *testing.T) {
	assert.Equal(t, "TCK-0001", FormatKey(1))
	assert.Equal(t, "TCK-0042", FormatKey(42))
	assert.Equal(t, "TCK-9999", FormatKey(9999))
	assert.Equal(t, "TCK-10000", FormatKey(10000))
}

func TestTicket_SetNumber(t *testing.T) {
	tkt := newTestTicket(t)

	require.NoError(t, tkt.SetNumber(3))
	assert.Equal(t, 3, tkt.Number())
	assert.Equal(t, "TCK-0003", tkt.Key())

	assert.Error(t, tkt.SetNumber(4), "number must be write-once")
	assert.Error(t, newTestTicket(t).SetNumber(0))
}

func TestTicket_SetStatus_ResolvedStampIdempotent(t *testing.T) {
	tkt := newTestTicket(t)

	require.NoError(t, tkt.SetStatus(vo.StatusResolved))
	first := tkt.ResolvedAt()
	require.NotNil(t, first)

	// A second transition into RESOLVED must not move the stamp.
	require.NoError(t, tkt.SetStatus(vo.StatusResolved))
	assert.Equal(t, first, tkt.ResolvedAt())
}

func TestTicket_SetStatus_ClosedStampIdempotent(t *testing.T) {
	tkt := newTestTicket(t)

	require.NoError(t, tkt.SetStatus(vo.StatusClosed))
	first := tkt.ClosedAt()
	require.NotNil(t, first)

	require.NoError(t, tkt.SetStatus(vo.StatusClosed))
	assert.Equal(t, first, tkt.ClosedAt())
}

func TestTicket_SetStatus_ReopeningClearsTimestamps(t *testing.T) {
	for _, reopening := range []vo.Status{vo.StatusNew, vo.StatusInProgress} {
		t.Run(reopening.String(), func(t *testing.T) {
			tkt := newTestTicket(t)
			require.NoError(t, tkt.SetStatus(vo.StatusResolved))
			require.NoError(t, tkt.SetStatus(vo.StatusClosed))
			require.NotNil(t, tkt.ResolvedAt())
			require.NotNil(t, tkt.ClosedAt())

			require.NoError(t, tkt.SetStatus(reopening))
			assert.Nil(t, tkt.ResolvedAt())
			assert.Nil(t, tkt.ClosedAt())
		})
	}
}

func TestTicket_SetStatus_OnHoldKeepsTimestamps(t *testing.T) {
	tkt := newTestTicket(t)
	require.NoError(t, tkt.SetStatus(vo.StatusResolved))
	stamp := tkt.ResolvedAt()

	require.NoError(t, tkt.SetStatus(vo.StatusOnHold))
	assert.Equal(t, stamp, tkt.ResolvedAt())
}

func TestTicket_SetStatus_AnyDirectTransitionAllowed(t *testing.T) {
	// There is no enforced transition graph; CLOSED straight from NEW is fine.
	tkt := newTestTicket(t)
	require.NoError(t, tkt.SetStatus(vo.StatusClosed))
	assert.Equal(t, vo.StatusClosed, tkt.Status())
	assert.Nil(t, tkt.ResolvedAt())
	assert.NotNil(t, tkt.ClosedAt())

	assert.Error(t, tkt.SetStatus(vo.Status("LIMBO")))
}

func TestTicket_Assign(t *testing.T) {
	tkt := newTestTicket(t)

	adminID := uint(7)
	tkt.Assign(&adminID)
	require.NotNil(t, tkt.AssignedAdminID())
	assert.Equal(t, adminID, *tkt.AssignedAdminID())

	tkt.Assign(nil)
	assert.Nil(t, tkt.AssignedAdminID())
}

func TestTicket_CanBeAccessedBy(t *testing.T) {
	tkt := newTestTicket(t)

	assert.True(t, tkt.CanBeAccessedBy(42, false), "creator")
	assert.True(t, tkt.CanBeAccessedBy(99, true), "admin")
	assert.False(t, tkt.CanBeAccessedBy(99, false), "other member")
}

func TestTicket_UpdateDetails(t *testing.T) {
	tkt := newTestTicket(t)

	newType := vo.TypeProblem
	newPriority := vo.PriorityUrgent
	require.NoError(t, tkt.UpdateDetails("New title", "", &newType, &newPriority))
	assert.Equal(t, "New title", tkt.Title())
	assert.Equal(t, "The third-floor printer is emitting smoke", tkt.Description())
	assert.Equal(t, vo.TypeProblem, tkt.Type())
	assert.Equal(t, vo.PriorityUrgent, tkt.Priority())

	bad := vo.Type("BANANA")
	assert.Error(t, tkt.UpdateDetails("", "", &bad, nil))
}

func TestMessage(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := NewMessage(1, 2, "Jane Doe", "hello")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", m.AuthorName())
	})

	t.Run("requires fields", func(t *testing.T) {
		_, err := NewMessage(0, 2, "Jane", "hello")
		assert.Error(t, err)
		_, err = NewMessage(1, 0, "Jane", "hello")
		assert.Error(t, err)
		_, err = NewMessage(1, 2, "", "hello")
		assert.Error(t, err)
		_, err = NewMessage(1, 2, "Jane", "")
		assert.Error(t, err)
		_, err = NewMessage(1, 2, "Jane", strings.Repeat("x", 10001))
		assert.Error(t, err)
	})
}

func TestAttachment(t *testing.T) {
	a, err := NewAttachment(1, 2, "報告.pdf", "application/pdf", 1024, "/uploads/abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(1024), a.Size())

	_, err = NewAttachment(1, 2, "", "application/pdf", 1024, "/uploads/abc.pdf")
	assert.Error(t, err)
	_, err = NewAttachment(1, 2, "x.pdf", "application/pdf", 0, "/uploads/abc.pdf")
	assert.Error(t, err)
}
