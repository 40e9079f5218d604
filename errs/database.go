package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// Database & storage sentinels
var (
	ErrAlreadyExists             = errors.New("already exists")
	ErrDatabaseQuery             = errors.New("database query failed")
	ErrDatabaseConnection        = errors.New("database connection failed")
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrForeignKeyConstraint      = errors.New("foreign key constraint violation")
)

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// IsDuplicateKey reports whether err is a unique-constraint violation,
// either as translated by GORM or as raised raw by the driver. Callers
// that do lookup-then-create rely on this to treat the constraint as the
// authoritative backstop under concurrency.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrUniqueConstraintViolation) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	// Classify common store failures so that constraint violations surface
	// as typed conflicts instead of generic 500s.
	if cause != nil {
		switch {
		case IsDuplicateKey(cause):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
				Details:    details,
				Cause:      cause,
			}
		case errors.Is(cause, gorm.ErrForeignKeyViolated) || strings.Contains(cause.Error(), "foreign key constraint"):
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid reference in %s", entity),
				Details:    "The referenced resource does not exist or cannot be linked",
				Cause:      cause,
			}
		case errors.Is(cause, gorm.ErrRecordNotFound):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(cause.Error(), "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    details,
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}
