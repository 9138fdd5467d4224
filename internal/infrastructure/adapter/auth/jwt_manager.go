package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	authport "github.com/moneyminder/finance-tracker/internal/domain/port/auth"
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
)

// JWTManager implements the TokenManager interface with HS256-signed JWTs
type JWTManager struct {
	secretKey    []byte
	tokenTTL     coreport.Duration
	timeProvider coreport.TimeProvider
}

// Claims represents the custom JWT claims for a user session
type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a new JWT manager. The secret key must be a
// strong random string; the TTL bounds the session lifetime.
func NewJWTManager(secretKey string, tokenTTL coreport.Duration, timeProvider coreport.TimeProvider) authport.TokenManager {
	return &JWTManager{
		secretKey:    []byte(secretKey),
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
	}
}

// Generate issues a signed, time-limited token encoding the user ID
func (m *JWTManager) Generate(userID uint64) (string, error) {
	now := m.timeProvider.Now()

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL.Std())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses a token and returns the user ID it encodes
func (m *JWTManager) Validate(tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			// Reject tokens signed with anything but HMAC
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithTimeFunc(m.timeProvider.Now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, errs.ErrInvalidToken
	}

	return claims.UserID, nil
}
