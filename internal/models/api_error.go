package models

// APIError is the uniform error payload returned to clients on failure.
// Field is set only for request-shape validation errors.
type APIError struct {
	Message string  `json:"message"`
	Field   *string `json:"field"`
}

// NewAPIError builds an APIError with no field reference.
func NewAPIError(message string) APIError {
	return APIError{Message: message}
}

// NewFieldAPIError builds an APIError pointing at the offending field.
func NewFieldAPIError(message, field string) APIError {
	return APIError{Message: message, Field: &field}
}
