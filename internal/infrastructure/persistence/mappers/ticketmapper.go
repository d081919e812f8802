package mappers

import (
	"encoding/json"
	"fmt"

	"deskhive/internal/domain/ticket"
	vo "deskhive/internal/domain/ticket/valueobjects"
	"deskhive/internal/infrastructure/persistence/models"
	"deskhive/internal/shared/mapper"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToEntity converts a ticket persistence model to a domain entity.
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)

	// ToEntities converts multiple ticket persistence models to domain entities.
	ToEntities(modelList []*models.TicketModel) ([]*ticket.Ticket, error)

	// MessageToModel converts a message domain entity to a persistence model.
	MessageToModel(m *ticket.Message) *models.MessageModel

	// MessageToEntity converts a message persistence model to a domain entity.
	MessageToEntity(model *models.MessageModel) (*ticket.Message, error)

	// MessagesToEntities converts multiple message persistence models to domain entities.
	MessagesToEntities(modelList []*models.MessageModel) ([]*ticket.Message, error)

	// AttachmentToModel converts an attachment domain entity to a persistence model.
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel

	// AttachmentToEntity converts an attachment persistence model to a domain entity.
	AttachmentToEntity(model *models.AttachmentModel) (*ticket.Attachment, error)

	// AttachmentsToEntities converts multiple attachment persistence models to domain entities.
	AttachmentsToEntities(modelList []*models.AttachmentModel) ([]*ticket.Attachment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	if t == nil {
		return nil
	}

	model := &models.TicketModel{
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
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}

	if len(t.Metadata()) > 0 {
		metaJSON, _ := json.Marshal(t.Metadata())
		model.Metadata = metaJSON
	}

	if t.ResolvedAt() != nil {
		resolved := t.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

// ToEntity converts a ticket persistence model to a domain entity.
// Messages and attachments are loaded separately by their repositories.
func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	ticketType, err := vo.NewType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket type (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket priority (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket status (id=%d): %w", model.ID, err)
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket metadata (id=%d): %w", model.ID, err)
		}
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.OrganizationID,
		model.Number,
		model.Key,
		model.Title,
		model.Description,
		ticketType,
		priority,
		status,
		model.RequesterName,
		model.RequesterEmail,
		model.CreatedByUserID,
		model.AssignedAdminID,
		metadata,
		millisPtrToTimePtr(model.ResolvedAt),
		millisPtrToTimePtr(model.ClosedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket entity: %w", err)
	}

	return entity, nil
}

// ToEntities converts multiple ticket persistence models to domain entities.
func (m *TicketMapperImpl) ToEntities(modelList []*models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.TicketModel) uint { return model.ID })
}

// MessageToModel converts a message domain entity to a persistence model.
func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.MessageModel {
	if msg == nil {
		return nil
	}

	return &models.MessageModel{
		ID:           msg.ID(),
		TicketID:     msg.TicketID(),
		AuthorUserID: msg.AuthorUserID(),
		AuthorName:   msg.AuthorName(),
		Body:         msg.Body(),
		CreatedAt:    msg.CreatedAt().UnixMilli(),
	}
}

// MessageToEntity converts a message persistence model to a domain entity.
func (m *TicketMapperImpl) MessageToEntity(model *models.MessageModel) (*ticket.Message, error) {
	if model == nil {
		return nil, nil
	}

	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.AuthorUserID,
		model.AuthorName,
		model.Body,
		millisToTime(model.CreatedAt),
	)
}

// MessagesToEntities converts multiple message persistence models to domain entities.
func (m *TicketMapperImpl) MessagesToEntities(modelList []*models.MessageModel) ([]*ticket.Message, error) {
	return mapper.MapSlicePtrWithID(modelList, m.MessageToEntity, func(model *models.MessageModel) uint { return model.ID })
}

// AttachmentToModel converts an attachment domain entity to a persistence model.
func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	if a == nil {
		return nil
	}

	return &models.AttachmentModel{
		ID:               a.ID(),
		TicketID:         a.TicketID(),
		UploadedByUserID: a.UploadedByUserID(),
		Filename:         a.Filename(),
		MimeType:         a.MimeType(),
		Size:             a.Size(),
		URL:              a.URL(),
		CreatedAt:        a.CreatedAt().UnixMilli(),
	}
}

// AttachmentToEntity converts an attachment persistence model to a domain entity.
func (m *TicketMapperImpl) AttachmentToEntity(model *models.AttachmentModel) (*ticket.Attachment, error) {
	if model == nil {
		return nil, nil
	}

	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.UploadedByUserID,
		model.Filename,
		model.MimeType,
		model.Size,
		model.URL,
		millisToTime(model.CreatedAt),
	)
}

// AttachmentsToEntities converts multiple attachment persistence models to domain entities.
func (m *TicketMapperImpl) AttachmentsToEntities(modelList []*models.AttachmentModel) ([]*ticket.Attachment, error) {
	return mapper.MapSlicePtrWithID(modelList, m.AttachmentToEntity, func(model *models.AttachmentModel) uint { return model.ID })
}
