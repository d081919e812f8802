// Package notification holds the in-app notification entity. Rows are
// written as best-effort side effects after ticket and member events; a
// failed write never fails the triggering operation.
package notification

import (
	"fmt"
	"time"
)

// Type tags what event produced a notification.
type Type string

const (
	TypeTicketCreated       Type = "TICKET_CREATED"
	TypeTicketAssigned      Type = "TICKET_ASSIGNED"
	TypeTicketStatusChanged Type = "TICKET_STATUS_CHANGED"
	TypeNewMessage          Type = "NEW_MESSAGE"
	TypeUserApproved        Type = "USER_APPROVED"
)

var validTypes = map[Type]bool{
	TypeTicketCreated:       true,
	TypeTicketAssigned:      true,
	TypeTicketStatusChanged: true,
	TypeNewMessage:          true,
	TypeUserApproved:        true,
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

func (t Type) String() string {
	return string(t)
}

type Notification struct {
	id               uint
	organizationID   uint
	userID           uint
	notificationType Type
	title            string
	body             string
	ticketID         *uint
	read             bool
	createdAt        time.Time
}

func NewNotification(organizationID, userID uint, notificationType Type, title, body string, ticketID *uint) (*Notification, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	return &Notification{
		organizationID:   organizationID,
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		body:             body,
		ticketID:         ticketID,
		createdAt:        time.Now(),
	}, nil
}

func ReconstructNotification(id, organizationID, userID uint, notificationType Type, title, body string, ticketID *uint, read bool, createdAt time.Time) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}

	return &Notification{
		id:               id,
		organizationID:   organizationID,
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		body:             body,
		ticketID:         ticketID,
		read:             read,
		createdAt:        createdAt,
	}, nil
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) OrganizationID() uint { return n.organizationID }
func (n *Notification) UserID() uint         { return n.userID }
func (n *Notification) Type() Type           { return n.notificationType }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Body() string         { return n.body }
func (n *Notification) TicketID() *uint      { return n.ticketID }
func (n *Notification) IsRead() bool         { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkRead() {
	n.read = true
}
