package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
)

func TestValidateAndConvertAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		expected    int64
		expectedErr error
	}{
		{"whole number", "10", 1000, nil},
		{"one decimal place", "10.5", 1050, nil},
		{"two decimal places", "10.15", 1015, nil},
		{"trailing point", "10.", 1000, nil},
		{"zero", "0", 0, nil},
		{"large amount", "123456.78", 12345678, nil},
		{"whitespace trimmed", "  42.00  ", 4200, nil},
		{"empty string", "", 0, errs.ErrInvalidAmount},
		{"negative amount", "-5.00", 0, errs.ErrNegativeAmount},
		{"three decimal places", "10.155", 0, errs.ErrInvalidAmount},
		{"multiple points", "10.1.5", 0, errs.ErrInvalidAmount},
		{"not a number", "abc", 0, errs.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := ValidateAndConvertAmount(tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestAmountInCentsToString(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{"typical amount", 1015, "10.15"},
		{"round amount", 1000, "10.00"},
		{"less than one", 5, "0.05"},
		{"zero", 0, "0.00"},
		{"negative balance", -2550, "-25.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AmountInCentsToString(tt.cents))
		})
	}
}

func TestAmountRoundTrip(t *testing.T) {
	// Converting to cents and back must preserve the canonical two-decimal form
	for _, amount := range []string{"0.00", "10.15", "999.99", "1.05"} {
		cents, err := ValidateAndConvertAmount(amount)
		assert.NoError(t, err)
		assert.Equal(t, amount, AmountInCentsToString(cents))
	}
}
