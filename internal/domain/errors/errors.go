// Package errors defines the application's domain error taxonomy.
// Every failure a use case can surface to a caller is one of the
// predefined AppError values below; callers match on the business error
// code, never on message text.
package errors

import (
	"net/http"

	"gamevault/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Registration and login errors.
	ErrEmailExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_EXISTS",
		"Email already in use.",
		"",
	)

	// ErrInvalidCredentials unifies "unknown email" and "wrong password" on
	// purpose so callers cannot enumerate registered accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	// Refresh token lifecycle errors.
	ErrMissingToken = NewBaseError(
		http.StatusBadRequest,
		"MISSING_TOKEN",
		"Refresh token is required.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Refresh token is invalid.",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Refresh token expired.",
		"",
	)

	// Access control errors.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access forbidden.",
		"",
	)

	// Role change errors.
	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Role must be ADMIN or USER.",
		"",
	)

	ErrInvalidTarget = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TARGET",
		"Admins may only demote themselves.",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	// Catalog and library errors.
	ErrGameNotFound = NewBaseError(
		http.StatusNotFound,
		"GAME_NOT_FOUND",
		"Game not found.",
		"",
	)

	ErrLibraryDuplicate = NewBaseError(
		http.StatusConflict,
		"LIBRARY_DUPLICATE",
		"Game already in library.",
		"",
	)

	ErrLibraryEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"LIBRARY_ENTRY_NOT_FOUND",
		"Game not found in user library.",
		"",
	)

	ErrMissingTargetUser = NewBaseError(
		http.StatusBadRequest,
		"MISSING_TARGET_USER",
		"User id is required.",
		"",
	)

	ErrMissingGame = NewBaseError(
		http.StatusBadRequest,
		"MISSING_GAME",
		"Game id is required.",
		"",
	)

	// Game configuration errors.
	ErrConfigNotFound = NewBaseError(
		http.StatusNotFound,
		"CONFIG_NOT_FOUND",
		"Game configuration not found.",
		"",
	)

	ErrInvalidSettings = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SETTINGS",
		"Settings must be an object.",
		"",
	)

	// General errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
