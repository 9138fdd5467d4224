package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/moneyminder/finance-tracker/internal/domain/error"
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
	"github.com/moneyminder/finance-tracker/internal/domain/port/usecase"
	"github.com/moneyminder/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/moneyminder/finance-tracker/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Signup handles the POST /api/auth/signup endpoint
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid signup request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	session, err := h.authUseCase.Signup(c.Request.Context(), usecase.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Signup failed", map[string]any{"error": err.Error()})
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err, status),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{Token: session.Token})
}

// Signin handles the POST /api/auth/signin endpoint
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	session, err := h.authUseCase.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Signin failed", map[string]any{"error": err.Error()})
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err, status),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{Token: session.Token})
}

// Me handles the GET /api/auth/me endpoint
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingToken),
			Message: "Authentication required",
		})
		return
	}

	profile, err := h.authUseCase.Profile(c.Request.Context(), userID)
	if err != nil {
		status := statusFromError(err)
		h.logger.Error("Failed to load profile", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err, status),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		Name:  profile.Name,
		Email: profile.Email,
	})
}
