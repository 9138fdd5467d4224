package usecase

import (
	"context"

	"github.com/moneyminder/finance-tracker/internal/domain/entity"
)

// SignupRequest represents an incoming signup request
type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

// SessionResponse carries a freshly issued session token
type SessionResponse struct {
	Token string `json:"token"`
}

// ProfileResponse represents the authenticated user's own profile
type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthUseCase defines methods for authentication-related business operations
type AuthUseCase interface {
	// Signup registers a new user and issues a session token.
	// Fails with ErrEmailInUse if the email is already registered.
	Signup(ctx context.Context, req SignupRequest) (*SessionResponse, error)

	// Signin verifies credentials and issues a session token.
	// Fails with ErrInvalidCredentials on unknown email or wrong password.
	Signin(ctx context.Context, email, password string) (*SessionResponse, error)

	// ResolveToken validates a session token and loads the user it encodes.
	// A token referencing a user that no longer exists fails with
	// ErrInvalidToken, indistinguishable from a bad token to the caller.
	ResolveToken(ctx context.Context, token string) (*entity.User, error)

	// Profile returns the display profile for an authenticated user
	Profile(ctx context.Context, userID uint64) (*ProfileResponse, error)
}
