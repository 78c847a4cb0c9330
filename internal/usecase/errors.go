package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailAlreadyExists = &apperror.AppError{
		Kind:    apperror.ErrConflict,
		Message: "email already exists",
		Fields:  map[string]string{"email": "email already exists"},
	}
	ErrSSNAlreadyExists = &apperror.AppError{
		Kind:    apperror.ErrConflict,
		Message: "ssn already exists",
		Fields:  map[string]string{"ssn": "ssn already exists"},
	}
	ErrInvalidCredentials        = apperror.New(apperror.ErrInvalidCredential, "invalid email or password")
	ErrCurrentPasswordMismatch   = apperror.New(apperror.ErrInvalidCredential, "current password is incorrect")
	ErrRegistrationRole          = apperror.FieldError("role", "role must be one of: student, teacher, employer")
	ErrUserNotFound              = apperror.New(apperror.ErrNotFound, "user not found")
	ErrPatientNotFound           = apperror.New(apperror.ErrNotFound, "patient not found")
	ErrPatientAccessDenied       = apperror.New(apperror.ErrForbidden, "you can only view your own medical record")
	ErrConsultationNotFound      = apperror.New(apperror.ErrNotFound, "consultation request not found")
	ErrNotConsultationOwner      = apperror.New(apperror.ErrForbidden, "consultation request belongs to another patient")
	ErrNotAssignedDoctor         = apperror.New(apperror.ErrForbidden, "consultation request is assigned to another doctor")
	ErrInvalidTransition         = apperror.New(apperror.ErrInvalidState, "consultation request is not in a state that allows this action")
	ErrNotificationNotFound      = apperror.New(apperror.ErrNotFound, "notification not found")
	ErrNotificationNotActionable = apperror.New(apperror.ErrBadRequest, "notification has no pending consultation request to act on")
	ErrAuditLogNotFound          = apperror.New(apperror.ErrNotFound, "audit log not found")
	ErrActionNotAllowed          = apperror.New(apperror.ErrForbidden, "your role cannot perform this action")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// validate runs struct validation and converts failures to a field-level error.
func validate(v *validator.CustomValidator, req interface{}) error {
	if err := v.Validate(req); err != nil {
		return apperror.Validation(v.FormatValidationErrors(err))
	}
	return nil
}

// parseDate parses an optional YYYY-MM-DD value. Empty strings clear the field.
func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	date, err := time.Parse(validator.DateLayout, strings.TrimSpace(*value))
	if err != nil {
		return nil, apperror.FieldError(field, field+" must use the YYYY-MM-DD format")
	}
	return &date, nil
}

// trimmed returns nil for nil or blank input.
func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	s := strings.TrimSpace(*value)
	if s == "" {
		return nil
	}
	return &s
}

// pagination turns a 1-based page into an offset. A zero limit means everything.
func pagination(page, limit int) (int, int) {
	if limit <= 0 {
		return 0, 0
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
