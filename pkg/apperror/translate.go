package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error classes (pgconn.PgError.Code).
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromDatabase translates a storage error into an AppError. Pure function of
// the error; callers decide whether to log before translating.
func FromDatabase(err error) *AppError {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound("Record not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			field := fieldFromConstraint(pgErr.ConstraintName)
			return Conflict(conflictMessage(field), field)
		case pgForeignKeyViolation:
			return BadRequest("Referenced record does not exist")
		}
	}

	return Internal("Internal server error")
}

// FromValidation surfaces the first failing field of a validator result.
func FromValidation(errs map[string]string) *AppError {
	for field, msg := range errs {
		return &AppError{
			Status:  http.StatusBadRequest,
			Code:    "VALIDATION_FAILED",
			Message: field + ": " + msg,
			Field:   field,
		}
	}
	return BadRequest("Validation failed")
}

func fieldFromConstraint(constraint string) string {
	switch {
	case strings.Contains(constraint, "email"):
		return "email"
	case strings.Contains(constraint, "phone"):
		return "phone"
	case strings.Contains(constraint, "owner"):
		return "ownerId"
	case strings.Contains(constraint, "booking"):
		return "bookingId"
	default:
		return ""
	}
}

func conflictMessage(field string) string {
	switch field {
	case "email":
		return "Email is already in use"
	case "phone":
		return "Phone number is already in use"
	case "ownerId":
		return "A business already exists for this owner"
	default:
		return "Record already exists"
	}
}
