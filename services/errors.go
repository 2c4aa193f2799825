package services

import "errors"

// Error taxonomy recovered at the request boundary. Controllers map these
// onto status codes: ErrNotFound → 404, ErrConflict → 409, ErrForbidden →
// 403, ValidationError → 400 with a field-keyed body.
var (
	ErrNotFound  = errors.New("object not found")
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports one malformed or out-of-range input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
