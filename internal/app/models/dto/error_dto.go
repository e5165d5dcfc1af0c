package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"Course with id CS999 not found"`
}

// NewErrorResponse creates an error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
