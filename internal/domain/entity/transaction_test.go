package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	"github.com/moneyminder/finance-tracker/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	newTimeProvider := func() *core.MockTimeProvider {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime)
		return tp
	}

	t.Run("should create a valid expense transaction", func(t *testing.T) {
		tx, err := NewTransaction(42, "expense", "Groceries", "25.50", "weekly shop", newTimeProvider())

		assert.NoError(t, err)
		assert.Equal(t, uint64(42), tx.UserID)
		assert.Equal(t, TypeExpense, tx.Type)
		assert.Equal(t, "Groceries", tx.Tag)
		assert.Equal(t, int64(2550), tx.AmountInCents)
		assert.Equal(t, "25.50", tx.Amount())
		assert.Equal(t, "weekly shop", tx.Description)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.True(t, tx.IsExpense())
		assert.False(t, tx.IsIncome())
	})

	t.Run("should create a valid income transaction", func(t *testing.T) {
		tx, err := NewTransaction(42, "income", "Salary", "1000", "", newTimeProvider())

		assert.NoError(t, err)
		assert.Equal(t, TypeIncome, tx.Type)
		assert.Equal(t, "1000.00", tx.Amount())
		assert.True(t, tx.IsIncome())
	})

	t.Run("should reject zero user ID", func(t *testing.T) {
		_, err := NewTransaction(0, "expense", "Groceries", "10.00", "", newTimeProvider())
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		_, err := NewTransaction(42, "transfer", "Groceries", "10.00", "", newTimeProvider())
		assert.ErrorIs(t, err, errs.ErrInvalidType)
	})

	t.Run("should reject empty tag", func(t *testing.T) {
		_, err := NewTransaction(42, "expense", "   ", "10.00", "", newTimeProvider())
		assert.ErrorIs(t, err, errs.ErrInvalidTag)
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := NewTransaction(42, "expense", "Groceries", "-10.00", "", newTimeProvider())
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		raw         string
		expected    TransactionType
		expectedErr error
	}{
		{"expense", TypeExpense, nil},
		{"income", TypeIncome, nil},
		{"", "", errs.ErrInvalidType},
		{"Expense", "", errs.ErrInvalidType},
		{"win", "", errs.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run("type "+tt.raw, func(t *testing.T) {
			parsed, err := ParseTransactionType(tt.raw)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}
}
