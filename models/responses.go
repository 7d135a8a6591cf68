package models

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse builds an [ErrorResponse] carrying message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: true, Message: message}
}

// TokenResponse is returned by the token issuing endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}
