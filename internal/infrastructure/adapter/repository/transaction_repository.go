package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/moneyminder/finance-tracker/internal/domain/entity"
	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
	"github.com/moneyminder/finance-tracker/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:        transaction.UserID,
		Type:          string(transaction.Type),
		Tag:           transaction.Tag,
		AmountInCents: transaction.AmountInCents,
		Description:   transaction.Description,
		CreatedAt:     transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            transactionModel.ID,
		UserID:        transactionModel.UserID,
		Type:          entity.TransactionType(transactionModel.Type),
		Tag:           transactionModel.Tag,
		AmountInCents: transactionModel.AmountInCents,
		Description:   transactionModel.Description,
		CreatedAt:     transactionModel.CreatedAt,
	}
}

// Create saves a new transaction and writes the assigned ID back to the entity
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"user_id": transaction.UserID,
		"type":    string(transaction.Type),
		"tag":     transaction.Tag,
	})

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsConstraintError(result.Error) {
			r.logger.Warn("Transaction references nonexistent user", map[string]any{
				"user_id": transaction.UserID,
			})
			return errs.ErrConstraintViolation
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id": transaction.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID
	return nil
}

// ListByUser retrieves the complete transaction set for one user,
// ordered by creation timestamp descending
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactionModels)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}

	r.logger.Debug("Transactions listed", map[string]any{
		"user_id": userID,
		"count":   len(transactions),
	})

	return transactions, nil
}
