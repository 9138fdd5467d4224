package entity

import (
	"strings"
	"time"

	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
)

// TransactionType represents the direction of a transaction
type TransactionType string

// Transaction types
const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// DefaultType is the main type assumed when a query does not specify one
const DefaultType = TypeExpense

// Transaction represents a single income or expense record. Transactions
// are immutable once created; there are no update or delete operations.
type Transaction struct {
	ID            uint64          // Unique identifier assigned by the store
	UserID        uint64          // ID of the owning user
	Type          TransactionType // expense or income
	Tag           string          // Free-form category string
	AmountInCents int64           // Non-negative amount in cents
	Description   string          // Optional free text
	CreatedAt     time.Time       // Assigned server-side at insertion
}

// NewTransaction creates a new transaction with basic validation.
// The creation timestamp comes from the time provider, never the client.
func NewTransaction(
	userID uint64,
	transactionType string,
	tag string,
	amount string,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	parsedType, err := ParseTransactionType(transactionType)
	if err != nil {
		return nil, err
	}

	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, errs.ErrInvalidTag
	}

	amountInCents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		UserID:        userID,
		Type:          parsedType,
		Tag:           tag,
		AmountInCents: amountInCents,
		Description:   description,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// Amount returns the transaction amount as a string with 2 decimal places
func (t *Transaction) Amount() string {
	return AmountInCentsToString(t.AmountInCents)
}

// IsIncome returns true if this transaction adds to the user's balance
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense returns true if this transaction subtracts from the user's balance
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// ParseTransactionType validates a raw type string
func ParseTransactionType(raw string) (TransactionType, error) {
	switch TransactionType(raw) {
	case TypeExpense:
		return TypeExpense, nil
	case TypeIncome:
		return TypeIncome, nil
	default:
		return "", errs.ErrInvalidType
	}
}
