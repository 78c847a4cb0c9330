package apperror

import (
	"errors"
	"net/http"
)

// Error kinds. Use cases wrap one of these so the delivery layer can map the
// failure to a status code with errors.Is.
var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrValidation        = errors.New("validation failed")
	ErrBadRequest        = errors.New("bad request")
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrConflict          = errors.New("conflict")
	ErrInvalidCredential = errors.New("invalid credential")
)

// AppError carries a kind plus an optional field-level message map.
type AppError struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

// New creates a new AppError of the given kind.
func New(kind error, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Validation builds a validation error with per-field messages.
func Validation(fields map[string]string) *AppError {
	return &AppError{Kind: ErrValidation, Message: ErrValidation.Error(), Fields: fields}
}

// FieldError is a single-field validation error.
func FieldError(field, message string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message, Fields: map[string]string{field: message}}
}

// FieldsOf returns the field messages attached to err, if any.
func FieldsOf(err error) map[string]string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}

// MapErrorToStatus maps error kinds to HTTP status codes.
func MapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// IsKnown reports whether err belongs to one of the kinds above, i.e. whether
// its message is safe to return to a client.
func IsKnown(err error) bool {
	return MapErrorToStatus(err) != http.StatusInternalServerError
}
