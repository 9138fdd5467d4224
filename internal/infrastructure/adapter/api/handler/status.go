package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/moneyminder/finance-tracker/internal/domain/error"
)

// statusFromError maps domain errors to HTTP status codes
func statusFromError(err error) int {
	switch {
	case domainerr.IsAuthFailure(err):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrEmailInUse):
		return http.StatusConflict
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsBadFilterError(err) || isValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// isValidationError reports whether the error comes from rejected request fields
func isValidationError(err error) bool {
	return errors.Is(err, domainerr.ErrInvalidRequest) ||
		errors.Is(err, domainerr.ErrInvalidAmount) ||
		errors.Is(err, domainerr.ErrNegativeAmount) ||
		errors.Is(err, domainerr.ErrInvalidType) ||
		errors.Is(err, domainerr.ErrInvalidTag) ||
		errors.Is(err, domainerr.ErrInvalidName) ||
		errors.Is(err, domainerr.ErrInvalidEmail)
}

// publicMessage returns the client-facing message for a domain error.
// Internal failures are never echoed verbatim, and auth failures get a
// uniform message so the failing factor stays indistinguishable; the
// detail lives in the server-side log fields.
func publicMessage(err error, status int) string {
	switch status {
	case http.StatusInternalServerError:
		return "Internal server error"
	case http.StatusUnauthorized:
		return "Invalid credentials"
	default:
		return err.Error()
	}
}
