package persistence

import (
	"context"

	"github.com/moneyminder/finance-tracker/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction for its owning user.
	// The store assigns the identifier; the creation timestamp is already
	// set on the entity. Transactions are append-only and never updated.
	//
	// Possible errors:
	// - ErrConstraintViolation: If the owning user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser retrieves the complete transaction set for one user,
	// ordered by creation timestamp descending. The query engine always
	// operates on this full snapshot.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
