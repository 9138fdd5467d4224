package transaction

import (
	"context"

	"github.com/moneyminder/finance-tracker/internal/domain/entity"
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
	"github.com/moneyminder/finance-tracker/internal/domain/port/persistence"
	"github.com/moneyminder/finance-tracker/internal/domain/port/usecase"
)

// TransactionUseCase implements transaction creation. Creation is the
// only mutation in the system: a single append-only insert with no
// multi-step transaction, so no partial-failure window exists.
type TransactionUseCase struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewTransactionUseCase creates a new transaction use case instance
func NewTransactionUseCase(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// CreateTransaction records a new transaction for the authenticated user.
// Beyond required-field presence there is no validation: callers are
// trusted on type and non-negative amount, and duplicates are allowed.
func (u *TransactionUseCase) CreateTransaction(ctx context.Context, userID uint64, req usecase.CreateTransactionRequest) (*entity.Transaction, error) {
	tx, err := entity.NewTransaction(userID, req.Type, req.Tag, req.Amount, req.Description, u.timeProvider)
	if err != nil {
		u.logger.Warn("Rejecting invalid transaction request", map[string]any{
			"user_id": userID,
			"type":    req.Type,
			"tag":     req.Tag,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := u.transactionRepo.Create(ctx, tx); err != nil {
		u.logger.Error("Failed to persist transaction", map[string]any{
			"user_id": userID,
			"tag":     tx.Tag,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Transaction recorded", map[string]any{
		"user_id":        userID,
		"transaction_id": tx.ID,
		"type":           string(tx.Type),
		"tag":            tx.Tag,
		"amount":         tx.Amount(),
	})

	return tx, nil
}
