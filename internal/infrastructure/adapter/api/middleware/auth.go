package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/moneyminder/finance-tracker/internal/domain/error"
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
	"github.com/moneyminder/finance-tracker/internal/domain/port/usecase"
	"github.com/moneyminder/finance-tracker/internal/infrastructure/adapter/api/dto"
)

// userIDKey is the gin context key under which the authenticated user ID is stored
const userIDKey = "authenticatedUserID"

// Auth middleware resolves the Bearer token and stores the authenticated
// user ID in the request context. Requests without a valid token are
// rejected with 401 before reaching the handler.
func Auth(authUseCase usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		user, err := authUseCase.ResolveToken(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Token resolution failed", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": c.GetHeader(RequestIDHeader),
				"error":      err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID stored by the Auth middleware
func CurrentUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint64)
	return userID, ok
}

// extractBearerToken pulls the token out of an "Authorization: Bearer <token>" header
func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", domainerr.ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", domainerr.ErrInvalidToken
	}

	return parts[1], nil
}
