package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	"github.com/moneyminder/finance-tracker/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	newTimeProvider := func() *core.MockTimeProvider {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime)
		return tp
	}

	t.Run("should create a valid user", func(t *testing.T) {
		user, err := NewUser("Ada", "Ada@Example.com", "$2a$10$hash", newTimeProvider())

		assert.NoError(t, err)
		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, "ada@example.com", user.Email, "email must be normalized")
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Zero(t, user.ID, "identifier is assigned by the store")
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := NewUser("  ", "ada@example.com", "$2a$10$hash", newTimeProvider())
		assert.ErrorIs(t, err, errs.ErrInvalidName)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := NewUser("Ada", "not-an-email", "$2a$10$hash", newTimeProvider())
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})

	t.Run("should reject empty password hash", func(t *testing.T) {
		_, err := NewUser("Ada", "ada@example.com", "", newTimeProvider())
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  ADA@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
