package dto

import (
	"time"

	"deskhive/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint                   `json:"id"`
	OrganizationID  uint                   `json:"organization_id"`
	Number          int                    `json:"number"`
	Key             string                 `json:"key"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Type            string                 `json:"type"`
	Priority        string                 `json:"priority"`
	Status          string                 `json:"status"`
	RequesterName   string                 `json:"requester_name"`
	RequesterEmail  string                 `json:"requester_email"`
	CreatedByUserID uint                   `json:"created_by_user_id"`
	AssignedAdminID *uint                  `json:"assigned_admin_id,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	ResolvedAt      *time.Time             `json:"resolved_at,omitempty"`
	ClosedAt        *time.Time             `json:"closed_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// MessageDTO carries one thread entry. RenderedBody is the sanitized HTML
// rendering of the markdown body, produced at read time.
type MessageDTO struct {
	ID           uint      `json:"id"`
	TicketID     uint      `json:"ticket_id"`
	AuthorUserID uint      `json:"author_user_id"`
	AuthorName   string    `json:"author_name"`
	Body         string    `json:"body"`
	RenderedBody string    `json:"rendered_body,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID               uint      `json:"id"`
	TicketID         uint      `json:"ticket_id"`
	UploadedByUserID uint      `json:"uploaded_by_user_id"`
	Filename         string    `json:"filename"`
	MimeType         string    `json:"mime_type"`
	Size             int64     `json:"size"`
	URL              string    `json:"url"`
	CreatedAt        time.Time `json:"created_at"`
}

func TicketToDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:              t.ID(),
		OrganizationID:  t.OrganizationID(),
		Number:          t.Number(),
		Key:             t.Key(),
		Title:           t.Title(),
		Description:     t.Description(),
		Type:            t.Type().String(),
		Priority:        t.Priority().String(),
		Status:          t.Status().String(),
		RequesterName:   t.RequesterName(),
		RequesterEmail:  t.RequesterEmail(),
		CreatedByUserID: t.CreatedByUserID(),
		AssignedAdminID: t.AssignedAdminID(),
		Metadata:        t.Metadata(),
		ResolvedAt:      t.ResolvedAt(),
		ClosedAt:        t.ClosedAt(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func TicketsToDTO(tickets []*ticket.Ticket) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, TicketToDTO(t))
	}
	return result
}

func MessageToDTO(m *ticket.Message, renderedBody string) *MessageDTO {
	if m == nil {
		return nil
	}
	return &MessageDTO{
		ID:           m.ID(),
		TicketID:     m.TicketID(),
		AuthorUserID: m.AuthorUserID(),
		AuthorName:   m.AuthorName(),
		Body:         m.Body(),
		RenderedBody: renderedBody,
		CreatedAt:    m.CreatedAt(),
	}
}

func AttachmentToDTO(a *ticket.Attachment) *AttachmentDTO {
	if a == nil {
		return nil
	}
	return &AttachmentDTO{
		ID:               a.ID(),
		TicketID:         a.TicketID(),
		UploadedByUserID: a.UploadedByUserID(),
		Filename:         a.Filename(),
		MimeType:         a.MimeType(),
		Size:             a.Size(),
		URL:              a.URL(),
		CreatedAt:        a.CreatedAt(),
	}
}
