package dto

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Detail    string                 `json:"detail" example:"Wing not found (slug='codezero')"`
	ErrorCode string                 `json:"error_code" example:"NOT_FOUND"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// MessageResponse is the body of mutation endpoints that return no entity.
type MessageResponse struct {
	Message string `json:"message" example:"Photo deleted successfully"`
}
