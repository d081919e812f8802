package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	OrganizationID  uint   `gorm:"not null;index;uniqueIndex:idx_tickets_org_number,priority:1"`
	Number          int    `gorm:"not null;uniqueIndex:idx_tickets_org_number,priority:2"`
	Key             string `gorm:"column:ticket_key;size:50;not null;index"`
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text;not null"`
	Type            string `gorm:"size:20;not null;index"`
	Priority        string `gorm:"size:20;not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	RequesterName   string `gorm:"size:100"`
	RequesterEmail  string `gorm:"size:255"`
	CreatedByUserID uint   `gorm:"not null;index"`
	AssignedAdminID *uint  `gorm:"index"`
	Metadata        datatypes.JSON
	ResolvedAt      *int64
	ClosedAt        *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type MessageModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	AuthorUserID uint   `gorm:"not null;index"`
	AuthorName   string `gorm:"size:200;not null"`
	Body         string `gorm:"type:text;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (MessageModel) TableName() string {
	return "ticket_messages"
}

type AttachmentModel struct {
	ID               uint   `gorm:"primaryKey"`
	TicketID         uint   `gorm:"not null;index"`
	UploadedByUserID uint   `gorm:"not null;index"`
	Filename         string `gorm:"size:255;not null"`
	MimeType         string `gorm:"size:100;not null"`
	Size             int64  `gorm:"not null"`
	URL              string `gorm:"size:500;not null"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "ticket_attachments"
}
