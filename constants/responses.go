package constants

// HTTP Response Messages
const (
	MsgPreflightOK      = "CORS preflight successful"
	MsgCountRetrieved   = "Visitor count retrieved successfully"
	MsgCountIncremented = "Visitor count incremented successfully"
	MsgUnexpectedError  = "An unexpected error occurred"

	ResponseMethodNotAllowed = "Method not allowed"
	ResponseInternalError    = "Internal server error"
)

// Health Statuses
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// Error Messages for Logging
const (
	LogFailedEncodeJSON = "Failed to encode JSON response: %v"
	LogFailedWriteBody  = "w.Write failed: %v"
)
