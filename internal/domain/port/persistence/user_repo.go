package persistence

import (
	"context"

	"github.com/moneyminder/finance-tracker/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// Create persists a new user and assigns its identifier.
	// Used by the POST /api/auth/signup endpoint.
	//
	// Possible errors:
	// - ErrEmailInUse: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID.
	// Used by the authentication middleware to resolve token claims;
	// a missing user behind a valid token is treated as an auth failure.
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by their unique email.
	// Used by the POST /api/auth/signin endpoint.
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the email exists
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
