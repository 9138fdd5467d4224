package usecase

import (
	"context"

	"github.com/moneyminder/finance-tracker/internal/domain/entity"
)

// CreateTransactionRequest represents an incoming transaction creation request
type CreateTransactionRequest struct {
	Type        string `json:"type"`
	Tag         string `json:"tag"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// TransactionUseCase defines methods for transaction-related business operations
type TransactionUseCase interface {
	// CreateTransaction records a new transaction for the authenticated user.
	// The server assigns identifier and creation timestamp; the record is
	// immutable afterwards.
	CreateTransaction(ctx context.Context, userID uint64, req CreateTransactionRequest) (*entity.Transaction, error)
}
