package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyPrincipal = "principal"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableOrganizations = "organizations"
	TableUsers         = "users"
	TableRefreshTokens = "refresh_tokens"
	TableTickets       = "tickets"
	TableMessages      = "ticket_messages"
	TableAttachments   = "ticket_attachments"
	TableNotifications = "notifications"

	// Ticket key formatting: "TCK-" + number zero-padded to 4 digits.
	TicketKeyPrefix = "TCK"

	// Organization slug length cap.
	MaxSlugLength = 50

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
