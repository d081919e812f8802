package ticket

import (
	"fmt"
	"time"
)

// Attachment is file metadata linked to a ticket. Content lives on the
// filesystem and is served under a static prefix; no processing happens here.
type Attachment struct {
	id               uint
	ticketID         uint
	uploadedByUserID uint
	filename         string
	mimeType         string
	size             int64
	url              string
	createdAt        time.Time
}

func NewAttachment(ticketID, uploadedByUserID uint, filename, mimeType string, size int64, url string) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("attachment size must be positive")
	}
	if url == "" {
		return nil, fmt.Errorf("attachment URL is required")
	}

	return &Attachment{
		ticketID:         ticketID,
		uploadedByUserID: uploadedByUserID,
		filename:         filename,
		mimeType:         mimeType,
		size:             size,
		url:              url,
		createdAt:        time.Now(),
	}, nil
}

func ReconstructAttachment(id, ticketID, uploadedByUserID uint, filename, mimeType string, size int64, url string, createdAt time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:               id,
		ticketID:         ticketID,
		uploadedByUserID: uploadedByUserID,
		filename:         filename,
		mimeType:         mimeType,
		size:             size,
		url:              url,
		createdAt:        createdAt,
	}, nil
}

func (a *Attachment) ID() uint               { return a.id }
func (a *Attachment) TicketID() uint         { return a.ticketID }
func (a *Attachment) UploadedByUserID() uint { return a.uploadedByUserID }
func (a *Attachment) Filename() string       { return a.filename }
func (a *Attachment) MimeType() string       { return a.mimeType }
func (a *Attachment) Size() int64            { return a.size }
func (a *Attachment) URL() string            { return a.url }
func (a *Attachment) CreatedAt() time.Time   { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
