package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskhive/internal/application/user/usecases"
	"deskhive/internal/shared/logger"
	"deskhive/internal/shared/utils"
)

// UserHandler is the admin-only member management surface.
type UserHandler struct {
	listUseCase         usecases.ListMembersExecutor
	getUseCase          usecases.GetMemberExecutor
	approveUseCase      usecases.ApproveMemberExecutor
	changeRoleUseCase   usecases.ChangeMemberRoleExecutor
	changeStatusUseCase usecases.ChangeMemberStatusExecutor
	logger              logger.Interface
}

func NewUserHandler(
	listUC usecases.ListMembersExecutor,
	getUC usecases.GetMemberExecutor,
	approveUC usecases.ApproveMemberExecutor,
	changeRoleUC usecases.ChangeMemberRoleExecutor,
	changeStatusUC usecases.ChangeMemberStatusExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUseCase:         listUC,
		getUseCase:          getUC,
		approveUseCase:      approveUC,
		changeRoleUseCase:   changeRoleUC,
		changeStatusUseCase: changeStatusUC,
		logger:              logger,
	}
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type ChangeMemberStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List godoc
// @Summary List organization members
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter"
// @Param status query string false "Status filter"
// @Param search query string false "Substring search over name and email"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.ErrorBody
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)
	result, err := h.listUseCase.Execute(c.Request.Context(), p, usecases.ListMembersQuery{
		Role:     c.Query("role"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Members, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary Get a member
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	memberID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	member, err := h.getUseCase.Execute(c.Request.Context(), p, memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", member)
}

// Approve godoc
// @Summary Approve a pending member
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /users/{id}/approve [post]
func (h *UserHandler) Approve(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	memberID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	member, err := h.approveUseCase.Execute(c.Request.Context(), p, memberID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "member approved", member)
}

// ChangeRole godoc
// @Summary Change a member's role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body ChangeRoleRequest true "Target role"
// @Success 200 {object} utils.APIResponse
// @Router /users/{id}/role [patch]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	memberID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.changeRoleUseCase.Execute(c.Request.Context(), p, usecases.ChangeMemberRoleCommand{
		MemberID: memberID,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role updated", member)
}

// ChangeStatus godoc
// @Summary Change a member's lifecycle status
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body ChangeMemberStatusRequest true "Target status"
// @Success 200 {object} utils.APIResponse
// @Router /users/{id}/status [patch]
func (h *UserHandler) ChangeStatus(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	memberID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeMemberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.changeStatusUseCase.Execute(c.Request.Context(), p, usecases.ChangeMemberStatusCommand{
		MemberID: memberID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "status updated", member)
}
