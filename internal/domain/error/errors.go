package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest     = 4000
	CodeInvalidAmount      = 4002
	CodeInvalidUserID      = 4003
	CodeInvalidType        = 4004
	CodeInvalidMonth       = 4005
	CodeInvalidYear        = 4006
	CodeInvalidCredentials = 4010
	CodeMissingToken       = 4011
	CodeInvalidToken       = 4012
	CodeUserNotFound       = 4040
	CodeEmailInUse         = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when the transaction amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the transaction amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidType is returned when the transaction type is not expense or income
	ErrInvalidType = errors.New("transaction type must be expense or income")

	// ErrInvalidTag is returned when the transaction tag is empty
	ErrInvalidTag = errors.New("transaction tag cannot be empty")

	// ErrInvalidMonth is returned when a month filter does not match a month name
	ErrInvalidMonth = errors.New("invalid month name")

	// ErrInvalidYear is returned when a year filter is not an integer
	ErrInvalidYear = errors.New("invalid year value")

	// ErrInvalidName is returned when a user's display name is empty
	ErrInvalidName = errors.New("name cannot be empty")

	// ErrInvalidEmail is returned when a user's email is empty or malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmailInUse is returned when signing up with an email that already exists
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidCredentials is returned when email/password verification fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken is returned when a request carries no session token
	ErrMissingToken = errors.New("authorization token required")

	// ErrInvalidToken is returned when a session token is malformed or expired
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidType), errors.Is(err, ErrInvalidTag):
		return CodeInvalidType
	case errors.Is(err, ErrInvalidMonth):
		return CodeInvalidMonth
	case errors.Is(err, ErrInvalidYear):
		return CodeInvalidYear
	case errors.Is(err, ErrEmailInUse):
		return CodeEmailInUse
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrMissingToken):
		return CodeMissingToken
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidEmail):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// FilterError represents an error in the transaction query filter
type FilterError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface for FilterError
func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid filter %s=%q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error
func (e *FilterError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *FilterError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "filter_error",
		"filter_field": e.Field,
		"filter_value": e.Value,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewFilterError creates a detailed filter error
func NewFilterError(field, value string, err error) error {
	return &FilterError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

// AuthError represents an authentication failure with context for logging
type AuthError struct {
	Email  string
	Reason string
	Err    error
}

// Error implements the error interface for AuthError
func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed for %s: %s - %v", e.Email, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AuthError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "auth_error",
		"email":      e.Email,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewAuthError creates a detailed authentication error
func NewAuthError(email, reason string, err error) error {
	return &AuthError{
		Email:  email,
		Reason: reason,
		Err:    err,
	}
}

// IsAuthFailure checks if the error should be reported as an authentication failure
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken)
}

// IsBadFilterError checks if the error is a query filter parse failure
func IsBadFilterError(err error) bool {
	return errors.Is(err, ErrInvalidMonth) || errors.Is(err, ErrInvalidYear)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
