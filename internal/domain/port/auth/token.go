package auth

// TokenManager issues and validates opaque session tokens encoding a
// user identifier. The domain has no knowledge of the signing scheme.
type TokenManager interface {
	// Generate issues a signed, time-limited token for the given user ID
	Generate(userID uint64) (string, error)

	// Validate checks a token and returns the user ID it encodes.
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is malformed, tampered with, or expired
	Validate(token string) (uint64, error)
}

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash derives a one-way hash from a plaintext password
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	//
	// Possible errors:
	// - ErrInvalidCredentials: If the password does not match
	Compare(hash, password string) error
}
