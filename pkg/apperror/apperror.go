package apperror

import (
	"net/http"
)

// AppError is the uniform failure shape every layer above the repositories
// works with. Status drives the HTTP code, Code is a stable machine string,
// Field names the offending input field when there is one.
type AppError struct {
	Status  int
	Code    string
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func BadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: message}
}

// NotFound covers both truly missing records and records the caller is not
// allowed to know exist.
func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

func Conflict(message, field string) *AppError {
	return &AppError{Status: http.StatusConflict, Code: "CONFLICT", Message: message, Field: field}
}

func Internal(message string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: "INTERNAL", Message: message}
}
