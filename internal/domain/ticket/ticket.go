package ticket

import (
	"fmt"
	"time"

	vo "deskhive/internal/domain/ticket/valueobjects"
	"deskhive/internal/shared/constants"
)

// Ticket is the support-request aggregate. Numbers are allocated per
// organization in the creating transaction; the human-facing key is derived
// from the number and never reused, even after deletion.
type Ticket struct {
	id              uint
	organizationID  uint
	number          int
	key             string
	title           string
	description     string
	ticketType      vo.Type
	priority        vo.Priority
	status          vo.Status
	requesterName   string
	requesterEmail  string
	createdByUserID uint
	assignedAdminID *uint
	metadata        map[string]interface{}
	resolvedAt      *time.Time
	closedAt        *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewTicket(
	organizationID uint,
	title string,
	description string,
	ticketType vo.Type,
	priority vo.Priority,
	requesterName string,
	requesterEmail string,
	createdByUserID uint,
) (*Ticket, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if createdByUserID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &Ticket{
		organizationID:  organizationID,
		title:           title,
		description:     description,
		ticketType:      ticketType,
		priority:        priority,
		status:          vo.StatusNew,
		requesterName:   requesterName,
		requesterEmail:  requesterEmail,
		createdByUserID: createdByUserID,
		metadata:        make(map[string]interface{}),
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructTicket(
	id uint,
	organizationID uint,
	number int,
	key string,
	title string,
	description string,
	ticketType vo.Type,
	priority vo.Priority,
	status vo.Status,
	requesterName string,
	requesterEmail string,
	createdByUserID uint,
	assignedAdminID *uint,
	metadata map[string]interface{},
	resolvedAt *time.Time,
	closedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if number <= 0 {
		return nil, fmt.Errorf("ticket number must be positive")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Ticket{
		id:              id,
		organizationID:  organizationID,
		number:          number,
		key:             key,
		title:           title,
		description:     description,
		ticketType:      ticketType,
		priority:        priority,
		status:          status,
		requesterName:   requesterName,
		requesterEmail:  requesterEmail,
		createdByUserID: createdByUserID,
		assignedAdminID: assignedAdminID,
		metadata:        metadata,
		resolvedAt:      resolvedAt,
		closedAt:        closedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

// FormatKey derives the human-facing key from a ticket number, zero-padded to
// four digits. Numbers past 9999 widen naturally.
func FormatKey(number int) string {
	return fmt.Sprintf("%s-%04d", constants.TicketKeyPrefix, number)
}

func (t *Ticket) ID() uint               { return t.id }
func (t *Ticket) OrganizationID() uint   { return t.organizationID }
func (t *Ticket) Number() int            { return t.number }
func (t *Ticket) Key() string            { return t.key }
func (t *Ticket) Title() string          { return t.title }
func (t *Ticket) Description() string    { return t.description }
func (t *Ticket) Type() vo.Type          { return t.ticketType }
func (t *Ticket) Priority() vo.Priority  { return t.priority }
func (t *Ticket) Status() vo.Status      { return t.status }
func (t *Ticket) RequesterName() string  { return t.requesterName }
func (t *Ticket) RequesterEmail() string { return t.requesterEmail }
func (t *Ticket) CreatedByUserID() uint  { return t.createdByUserID }
func (t *Ticket) AssignedAdminID() *uint { return t.assignedAdminID }
func (t *Ticket) ResolvedAt() *time.Time { return t.resolvedAt }
func (t *Ticket) ClosedAt() *time.Time   { return t.closedAt }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time   { return t.updatedAt }

func (t *Ticket) Metadata() map[string]interface{} {
	out := make(map[string]interface{}, len(t.metadata))
	for k, v := range t.metadata {
		out[k] = v
	}
	return out
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber fixes the per-organization sequence number and derives the key.
func (t *Ticket) SetNumber(number int) error {
	if t.number != 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if number <= 0 {
		return fmt.Errorf("ticket number must be positive")
	}
	t.number = number
	t.key = FormatKey(number)
	return nil
}

// SetStatus sets the lifecycle state and applies the derived-timestamp rules:
// entering RESOLVED stamps resolvedAt once, entering CLOSED stamps closedAt
// once, and entering NEW or IN_PROGRESS clears both timestamps
// unconditionally (re-opening).
func (t *Ticket) SetStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	if newStatus.IsResolved() && t.resolvedAt == nil {
		now := time.Now()
		t.resolvedAt = &now
	}

	if newStatus.IsClosed() && t.closedAt == nil {
		now := time.Now()
		t.closedAt = &now
	}

	if newStatus.IsReopening() {
		t.resolvedAt = nil
		t.closedAt = nil
	}

	return nil
}

// Assign points the ticket at an admin; nil clears the assignment.
// The role and tenant checks on the target happen in the use case, where the
// member can be loaded.
func (t *Ticket) Assign(adminID *uint) {
	t.assignedAdminID = adminID
	t.updatedAt = time.Now()
}

// UpdateDetails edits the mutable fields; zero values keep the current one.
func (t *Ticket) UpdateDetails(title, description string, ticketType *vo.Type, priority *vo.Priority) error {
	if title != "" {
		if len(title) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		t.title = title
	}
	if description != "" {
		if len(description) > 5000 {
			return fmt.Errorf("description exceeds maximum length of 5000 characters")
		}
		t.description = description
	}
	if ticketType != nil {
		if !ticketType.IsValid() {
			return fmt.Errorf("invalid ticket type")
		}
		t.ticketType = *ticketType
	}
	if priority != nil {
		if !priority.IsValid() {
			return fmt.Errorf("invalid priority")
		}
		t.priority = *priority
	}
	t.updatedAt = time.Now()
	return nil
}

// CanBeAccessedBy applies the creator-scoping rule once tenant membership is
// already established.
func (t *Ticket) CanBeAccessedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return t.createdByUserID == userID
}
