package handlers

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error messages returned by the token exchange endpoint
const (
	msgMethodNotAllowed = "Method not allowed"
	msgUnreadableBody   = "Failed to read request body"
	msgInvalidJSON      = "Invalid JSON in request body"
	msgUIDRequired      = "UID is required"
	msgUIDInvalid       = "uid must be non-empty, and not longer than 128 characters"
)

func errorBody(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
