package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"deskhive/internal/application/ticket/usecases"
	"deskhive/internal/shared/logger"
	"deskhive/internal/shared/utils"
)

// AttachmentHandler accepts multipart uploads and serves attachment
// metadata. The stored bytes themselves are served from the static uploads
// route.
type AttachmentHandler struct {
	addUseCase  usecases.AddAttachmentExecutor
	listUseCase usecases.ListAttachmentsExecutor
	maxSize     int64
	logger      logger.Interface
}

func NewAttachmentHandler(
	addUC usecases.AddAttachmentExecutor,
	listUC usecases.ListAttachmentsExecutor,
	maxSize int64,
	logger logger.Interface,
) *AttachmentHandler {
	return &AttachmentHandler{
		addUseCase:  addUC,
		listUseCase: listUC,
		maxSize:     maxSize,
		logger:      logger,
	}
}

// Upload godoc
// @Summary Attach a file to a ticket
// @Tags tickets
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param file formData file true "File content"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /tickets/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	if fileHeader.Size > h.maxSize {
		utils.ErrorResponse(c, http.StatusBadRequest, "file exceeds the maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	// LimitReader backstops a lying Content-Length.
	content, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		h.logger.Errorw("failed to read uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	result, err := h.addUseCase.Execute(c.Request.Context(), p, usecases.AddAttachmentCommand{
		TicketID: ticketID,
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Content:  content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// List godoc
// @Summary List a ticket's attachments
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{id}/attachments [get]
func (h *AttachmentHandler) List(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachments, err := h.listUseCase.Execute(c.Request.Context(), p, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", attachments)
}
