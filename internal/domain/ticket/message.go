package ticket

import (
	"fmt"
	"time"
)

// Message is one entry of a ticket's conversation thread. The author's
// display name is denormalized so the thread survives author deletion.
type Message struct {
	id           uint
	ticketID     uint
	authorUserID uint
	authorName   string
	body         string
	createdAt    time.Time
}

func NewMessage(ticketID, authorUserID uint, authorName, body string) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorUserID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if authorName == "" {
		return nil, fmt.Errorf("author name is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body is required")
	}
	if len(body) > 10000 {
		return nil, fmt.Errorf("message body exceeds maximum length of 10000 characters")
	}

	return &Message{
		ticketID:     ticketID,
		authorUserID: authorUserID,
		authorName:   authorName,
		body:         body,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructMessage(id, ticketID, authorUserID uint, authorName, body string, createdAt time.Time) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Message{
		id:           id,
		ticketID:     ticketID,
		authorUserID: authorUserID,
		authorName:   authorName,
		body:         body,
		createdAt:    createdAt,
	}, nil
}

func (m *Message) ID() uint             { return m.id }
func (m *Message) TicketID() uint       { return m.ticketID }
func (m *Message) AuthorUserID() uint   { return m.authorUserID }
func (m *Message) AuthorName() string   { return m.authorName }
func (m *Message) Body() string         { return m.body }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
