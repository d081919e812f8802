package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deskhive/internal/domain/ticket"
	"deskhive/internal/infrastructure/persistence/mappers"
	"deskhive/internal/infrastructure/persistence/models"
	db "deskhive/internal/shared/db"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]string{
	"id":         "id",
	"number":     "number",
	"key":        "ticket_key",
	"title":      "title",
	"status":     "status",
	"priority":   "priority",
	"type":       "type",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// NextNumber allocates the next per-organization ticket number. It locks the
// organization's current maximum so concurrent creators inside their own
// transactions serialize; the unique (organization_id, number) index backstops
// any race that slips through.
func (r *TicketRepository) NextNumber(ctx context.Context, organizationID uint) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{})
	// SQLite has no row locks; single-writer semantics cover it there.
	if tx.Dialector.Name() == "mysql" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var maxNumber int
	err := query.
		Where("organization_id = ?", organizationID).
		Select("COALESCE(MAX(number), 0)").
		Scan(&maxNumber).Error
	if err != nil {
		return 0, fmt.Errorf("failed to allocate ticket number: %w", err)
	}

	return maxNumber + 1, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id, organizationID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":             model.Title,
			"description":       model.Description,
			"type":              model.Type,
			"priority":          model.Priority,
			"status":            model.Status,
			"assigned_admin_id": model.AssignedAdminID,
			"metadata":          model.Metadata,
			"resolved_at":       model.ResolvedAt,
			"closed_at":         model.ClosedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}

	return nil
}

func (r *TicketRepository) List(
	ctx context.Context,
	organizationID uint,
	filter ticket.Filter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Where("organization_id = ?", organizationID)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.AssignedAdminID != nil {
		query = query.Where("assigned_admin_id = ?", *filter.AssignedAdminID)
	}
	if filter.CreatedByUserID != nil {
		query = query.Where("created_by_user_id = ?", *filter.CreatedByUserID)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(ticket_key) LIKE ? OR LOWER(title) LIKE ? OR LOWER(requester_name) LIKE ? OR LOWER(requester_email) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	column, ok := allowedTicketOrderByFields[strings.ToLower(filter.SortBy)]
	if !ok {
		column = "created_at"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	query = query.Order(column + " " + order)

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []*models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToEntities(ticketModels)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}
