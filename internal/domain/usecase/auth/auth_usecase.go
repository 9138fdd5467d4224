package auth

import (
	"context"
	"errors"

	"github.com/moneyminder/finance-tracker/internal/domain/entity"
	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	authport "github.com/moneyminder/finance-tracker/internal/domain/port/auth"
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
	"github.com/moneyminder/finance-tracker/internal/domain/port/persistence"
	"github.com/moneyminder/finance-tracker/internal/domain/port/usecase"
)

// AuthUseCase implements signup, signin, and token resolution
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	tokenManager authport.TokenManager
	hasher       authport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new auth use case instance
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	tokenManager authport.TokenManager,
	hasher authport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Signup registers a new user and issues a session token
func (u *AuthUseCase) Signup(ctx context.Context, req usecase.SignupRequest) (*usecase.SessionResponse, error) {
	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(req.Name, req.Email, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	// The unique email constraint is enforced by the store; a pre-check
	// here would still race with concurrent signups.
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrEmailInUse) {
			u.logger.Warn("Signup with email already in use", map[string]any{
				"email": user.Email,
			})
		}
		return nil, err
	}

	token, err := u.tokenManager.Generate(user.ID)
	if err != nil {
		u.logger.Error("Failed to issue token after signup", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	u.logger.Info("User signed up", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return &usecase.SessionResponse{Token: token}, nil
}

// Signin verifies credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (u *AuthUseCase) Signin(ctx context.Context, email, password string) (*usecase.SessionResponse, error) {
	email = entity.NormalizeEmail(email)

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.NewAuthError(email, "unknown email", errs.ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, errs.NewAuthError(email, "password mismatch", errs.ErrInvalidCredentials)
	}

	token, err := u.tokenManager.Generate(user.ID)
	if err != nil {
		u.logger.Error("Failed to issue token after signin", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	u.logger.Info("User signed in", map[string]any{
		"user_id": user.ID,
	})

	return &usecase.SessionResponse{Token: token}, nil
}

// ResolveToken validates a session token and loads the user it encodes
func (u *AuthUseCase) ResolveToken(ctx context.Context, token string) (*entity.User, error) {
	userID, err := u.tokenManager.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		// A valid token for a vanished user is an authentication failure,
		// not a not-found condition
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Warn("Token references nonexistent user", map[string]any{
				"user_id": userID,
			})
			return nil, errs.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

// Profile returns the display profile for an authenticated user
func (u *AuthUseCase) Profile(ctx context.Context, userID uint64) (*usecase.ProfileResponse, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.ProfileResponse{
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
