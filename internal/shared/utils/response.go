package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskhive/internal/shared/constants"
	"deskhive/internal/shared/errors"
)

// APIResponse is the success envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorBody is the error envelope. Clients rely on the single message field;
// the taxonomy is conveyed through the status code.
type ErrorBody struct {
	Message string `json:"message"`
}

// ListResponse is the paginated list envelope.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// SuccessResponse sends a successful response with a custom status code.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// CreatedResponse sends a 201 with the created resource.
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	resp := APIResponse{Success: true, Data: data}
	if len(message) > 0 {
		resp.Message = message[0]
	}
	c.JSON(http.StatusCreated, resp)
}

// ErrorResponse sends an error response with the given status and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

// ErrorResponseWithError maps an error to its HTTP status. AppError carries
// its own code and client-safe message; anything else is a generic 500 so
// internals never leak.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Message: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: constants.ErrMsgInternalServerError})
}

// ListSuccessResponse sends a paginated list.
func ListSuccessResponse(c *gin.Context, items interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data: ListResponse{
			Items:      items,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: TotalPages(total, pageSize),
		},
	})
}

// NoContentResponse sends a 204.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
