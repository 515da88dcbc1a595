package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FieldError names a request field and what is wrong with it
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
