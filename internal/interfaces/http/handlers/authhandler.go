package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskhive/internal/application/auth/dto"
	"deskhive/internal/application/auth/usecases"
	"deskhive/internal/shared/logger"
	"deskhive/internal/shared/utils"
)

// AuthHandler exposes registration, login, token rotation, and the profile
// surface of the authenticated member.
type AuthHandler struct {
	registerUseCase      usecases.RegisterExecutor
	joinUseCase          usecases.JoinExecutor
	loginUseCase         usecases.LoginExecutor
	refreshUseCase       usecases.RefreshExecutor
	logoutUseCase        usecases.LogoutExecutor
	getProfileUseCase    usecases.GetProfileExecutor
	updateProfileUseCase usecases.UpdateProfileExecutor
	logger               logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	joinUC usecases.JoinExecutor,
	loginUC usecases.LoginExecutor,
	refreshUC usecases.RefreshExecutor,
	logoutUC usecases.LogoutExecutor,
	getProfileUC usecases.GetProfileExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:      registerUC,
		joinUseCase:          joinUC,
		loginUseCase:         loginUC,
		refreshUseCase:       refreshUC,
		logoutUseCase:        logoutUC,
		getProfileUseCase:    getProfileUC,
		updateProfileUseCase: updateProfileUC,
		logger:               logger,
	}
}

type RegisterRequest struct {
	OrganizationName string `json:"organization_name" binding:"required,min=1,max=100"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	FirstName        string `json:"first_name" binding:"required,max=100"`
	LastName         string `json:"last_name" binding:"required,max=100"`
}

type JoinRequest struct {
	OrganizationSlug string `json:"organization_slug" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	FirstName        string `json:"first_name" binding:"required,max=100"`
	LastName         string `json:"last_name" binding:"required,max=100"`
}

type LoginRequest struct {
	OrganizationSlug string `json:"organization_slug" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name" binding:"omitempty,max=100"`
	LastName        *string `json:"last_name" binding:"omitempty,max=100"`
	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password" binding:"omitempty,min=8"`
}

type authResponse struct {
	Tokens       *dto.TokenPair       `json:"tokens"`
	User         *dto.UserDTO         `json:"user"`
	Organization *dto.OrganizationDTO `json:"organization"`
}

// Register godoc
// @Summary Create an organization with its first administrator
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RegisterCommand{
		OrganizationName: req.OrganizationName,
		Email:            req.Email,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "organization created", authResponse{
		Tokens:       result.Tokens,
		User:         result.User,
		Organization: result.Organization,
	})
}

// Join godoc
// @Summary Request membership in an existing organization
// @Tags auth
// @Accept json
// @Produce json
// @Param request body JoinRequest true "Join payload"
// @Success 202 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /auth/join [post]
func (h *AuthHandler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.JoinCommand{
		OrganizationSlug: req.OrganizationSlug,
		Email:            req.Email,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
	}

	result, err := h.joinUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, result.Message, nil)
}

// Login godoc
// @Summary Authenticate a member and issue a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginCommand{
		OrganizationSlug: req.OrganizationSlug,
		Email:            req.Email,
		Password:         req.Password,
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", authResponse{
		Tokens:       result.Tokens,
		User:         result.User,
		Organization: result.Organization,
	})
}

// Refresh godoc
// @Summary Rotate a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.ErrorBody
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "refresh token is required")
		return
	}

	result, err := h.refreshUseCase.Execute(c.Request.Context(), usecases.RefreshCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", gin.H{"tokens": result.Tokens})
}

// Logout godoc
// @Summary Revoke a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "Logout payload"
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	// Logout is idempotent; a missing or malformed body is still a success.
	_ = c.ShouldBindJSON(&req)

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

// Me godoc
// @Summary Get the authenticated member's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	profile, err := h.getProfileUseCase.Execute(c.Request.Context(), usecases.GetProfileQuery{
		OrganizationID: p.OrganizationID,
		UserID:         p.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UpdateProfile godoc
// @Summary Update the authenticated member's profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile changes"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /auth/me [patch]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.updateProfileUseCase.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		OrganizationID:  p.OrganizationID,
		UserID:          p.UserID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", profile)
}
