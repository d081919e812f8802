package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deskhive/internal/application/ticket/usecases"
	"deskhive/internal/shared/logger"
	"deskhive/internal/shared/utils"
)

// TicketHandler exposes the ticket lifecycle: creation, listing, edits,
// status transitions, assignment, deletion, and the message thread.
type TicketHandler struct {
	createUseCase       usecases.CreateTicketExecutor
	getUseCase          usecases.GetTicketExecutor
	listUseCase         usecases.ListTicketsExecutor
	updateUseCase       usecases.UpdateTicketExecutor
	changeStatusUseCase usecases.ChangeTicketStatusExecutor
	assignUseCase       usecases.AssignTicketExecutor
	deleteUseCase       usecases.DeleteTicketExecutor
	addMessageUseCase   usecases.AddMessageExecutor
	listMessagesUseCase usecases.ListMessagesExecutor
	logger              logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	getUC usecases.GetTicketExecutor,
	listUC usecases.ListTicketsExecutor,
	updateUC usecases.UpdateTicketExecutor,
	changeStatusUC usecases.ChangeTicketStatusExecutor,
	assignUC usecases.AssignTicketExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	addMessageUC usecases.AddMessageExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase:       createUC,
		getUseCase:          getUC,
		listUseCase:         listUC,
		updateUseCase:       updateUC,
		changeStatusUseCase: changeStatusUC,
		assignUseCase:       assignUC,
		deleteUseCase:       deleteUC,
		addMessageUseCase:   addMessageUC,
		listMessagesUseCase: listMessagesUC,
		logger:              logger,
	}
}

type CreateTicketRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	Description     string `json:"description" binding:"required"`
	Type            string `json:"type" binding:"required"`
	Priority        string `json:"priority" binding:"required"`
	RequesterName   string `json:"requester_name" binding:"omitempty,max=100"`
	RequesterEmail  string `json:"requester_email" binding:"omitempty,email"`
	AssignedAdminID *uint  `json:"assigned_admin_id"`
}

type UpdateTicketRequest struct {
	Title       string `json:"title" binding:"omitempty,max=200"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignTicketRequest struct {
	// AssignedAdminID null clears the assignment.
	AssignedAdminID *uint `json:"assigned_admin_id"`
}

type AddMessageRequest struct {
	Body       string `json:"body" binding:"required"`
	AuthorName string `json:"author_name" binding:"omitempty,max=100"`
}

// Create godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTicketRequest true "Ticket payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), p, usecases.CreateTicketCommand{
		Title:           req.Title,
		Description:     req.Description,
		Type:            req.Type,
		Priority:        req.Priority,
		RequesterName:   req.RequesterName,
		RequesterEmail:  req.RequesterEmail,
		AssignedAdminID: req.AssignedAdminID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// List godoc
// @Summary List tickets visible to the caller
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param type query string false "Type filter"
// @Param assigned_admin_id query int false "Assignee filter"
// @Param search query string false "Substring search over key, title, requester"
// @Param sort_by query string false "Sort column"
// @Param sort_order query string false "asc or desc"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)
	query := usecases.ListTicketsQuery{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Type:      c.Query("type"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}

	if raw := c.Query("assigned_admin_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid assigned_admin_id")
			return
		}
		adminID := uint(id)
		query.AssignedAdminID = &adminID
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), p, query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary Get a single ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), p, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update godoc
// @Summary Edit a ticket's descriptive fields
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body UpdateTicketRequest true "Changes"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{id} [patch]
func (h *TicketHandler) Update(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), p, usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", result)
}

// ChangeStatus godoc
// @Summary Set a ticket's workflow status
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body ChangeStatusRequest true "Target status"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{id}/status [patch]
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.changeStatusUseCase.Execute(c.Request.Context(), p, usecases.ChangeTicketStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "status updated", result)
}

// Assign godoc
// @Summary Assign a ticket to an administrator
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body AssignTicketRequest true "Assignee (null clears)"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.ErrorBody
// @Router /tickets/{id}/assign [post]
func (h *TicketHandler) Assign(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.assignUseCase.Execute(c.Request.Context(), p, usecases.AssignTicketCommand{
		TicketID:        ticketID,
		AssignedAdminID: req.AssignedAdminID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket assigned", result)
}

// Delete godoc
// @Summary Delete a ticket and its thread
// @Tags tickets
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 204
// @Failure 403 {object} utils.ErrorBody
// @Router /tickets/{id} [delete]
func (h *TicketHandler) Delete(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), p, ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddMessage godoc
// @Summary Post a message on a ticket's thread
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body AddMessageRequest true "Message payload"
// @Success 201 {object} utils.APIResponse
// @Router /tickets/{id}/messages [post]
func (h *TicketHandler) AddMessage(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.addMessageUseCase.Execute(c.Request.Context(), p, usecases.AddMessageCommand{
		TicketID:   ticketID,
		Body:       req.Body,
		AuthorName: req.AuthorName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListMessages godoc
// @Summary List a ticket's messages oldest first
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{id}/messages [get]
func (h *TicketHandler) ListMessages(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	messages, err := h.listMessagesUseCase.Execute(c.Request.Context(), p, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", messages)
}
