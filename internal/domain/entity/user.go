package entity

import (
	"strings"
	"time"

	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
)

// User represents an account holder. A user exclusively owns zero or
// more transactions; queries are always scoped to a single user's set.
type User struct {
	ID           uint64    // Unique identifier for the user
	Name         string    // Display name
	Email        string    // Unique email address, stored lowercase
	PasswordHash string    // Hash of the user's password, never the password itself
	CreatedAt    time.Time // When the user signed up
}

// NewUser creates a new user from signup input. The password hash must
// already be computed by the caller; the entity never sees plaintext.
func NewUser(name, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrInvalidName
	}

	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidEmail
	}

	if passwordHash == "" {
		return nil, errs.ErrInvalidCredentials
	}

	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// NormalizeEmail canonicalizes an email address for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
