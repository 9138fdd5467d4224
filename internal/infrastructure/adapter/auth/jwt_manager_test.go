package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
	"github.com/moneyminder/finance-tracker/mocks/port/core"
)

func newFixedTimeProvider(now time.Time) *core.MockTimeProvider {
	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(now)
	return tp
}

func TestJWTManager(t *testing.T) {
	issuedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tokenTTL := coreport.Duration(8 * time.Hour)

	t.Run("should round-trip a user ID", func(t *testing.T) {
		manager := NewJWTManager("test-secret-key", tokenTTL, newFixedTimeProvider(issuedAt))

		token, err := manager.Generate(42)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := manager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), userID)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		issuer := NewJWTManager("test-secret-key", tokenTTL, newFixedTimeProvider(issuedAt))
		token, err := issuer.Generate(42)
		require.NoError(t, err)

		// Validate 9 hours later, one hour past expiry
		validator := NewJWTManager("test-secret-key", tokenTTL, newFixedTimeProvider(issuedAt.Add(9*time.Hour)))
		_, err = validator.Validate(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		issuer := NewJWTManager("other-secret", tokenTTL, newFixedTimeProvider(issuedAt))
		token, err := issuer.Generate(42)
		require.NoError(t, err)

		validator := NewJWTManager("test-secret-key", tokenTTL, newFixedTimeProvider(issuedAt))
		_, err = validator.Validate(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		manager := NewJWTManager("test-secret-key", tokenTTL, newFixedTimeProvider(issuedAt))
		_, err := manager.Validate("not.a.token")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}

func TestBcryptHasher(t *testing.T) {
	// Minimum bcrypt cost keeps the test fast
	hasher := NewBcryptHasher(4)

	t.Run("should verify the hashed password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret-pass")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", hash)

		assert.NoError(t, hasher.Compare(hash, "s3cret-pass"))
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret-pass")
		require.NoError(t, err)

		assert.ErrorIs(t, hasher.Compare(hash, "wrong"), errs.ErrInvalidCredentials)
	})

	t.Run("should salt hashes", func(t *testing.T) {
		first, err := hasher.Hash("s3cret-pass")
		require.NoError(t, err)
		second, err := hasher.Hash("s3cret-pass")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
