package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moneyminder/finance-tracker/internal/domain/entity"
	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	portusecase "github.com/moneyminder/finance-tracker/internal/domain/port/usecase"
	"github.com/moneyminder/finance-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/moneyminder/finance-tracker/internal/infrastructure/adapter/logger"
	mockusecase "github.com/moneyminder/finance-tracker/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newAuthRouter wires the auth endpoints the way the real router does
func newAuthRouter(authUseCase *mockusecase.MockAuthUseCase) *gin.Engine {
	noopLogger := logger.NewNoopLogger()
	h := NewAuthHandler(authUseCase, noopLogger)

	router := gin.New()
	router.POST("/api/auth/signup", h.Signup)
	router.POST("/api/auth/signin", h.Signin)
	router.GET("/api/auth/me", middleware.Auth(authUseCase, noopLogger), h.Me)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("should return 201 with token for a new account", func(t *testing.T) {
		mockAuth := new(mockusecase.MockAuthUseCase)
		mockAuth.On("Signup", mock.Anything, portusecase.SignupRequest{
			Name:     "Dana",
			Email:    "dana@example.com",
			Password: "secret1",
		}).Return(&portusecase.SessionResponse{Token: "issued-token"}, nil)

		router := newAuthRouter(mockAuth)
		recorder := postJSON(t, router, "/api/auth/signup", map[string]string{
			"name":     "Dana",
			"email":    "dana@example.com",
			"password": "secret1",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "issued-token", body["token"])
		mockAuth.AssertExpectations(t)
	})

	t.Run("should return 409 when email is already registered", func(t *testing.T) {
		mockAuth := new(mockusecase.MockAuthUseCase)
		mockAuth.On("Signup", mock.Anything, mock.Anything).Return(nil, errs.ErrEmailInUse)

		router := newAuthRouter(mockAuth)
		recorder := postJSON(t, router, "/api/auth/signup", map[string]string{
			"name":     "Dana",
			"email":    "dana@example.com",
			"password": "secret1",
		})

		assert.Equal(t, http.StatusConflict, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, float64(errs.CodeEmailInUse), body["code"])
	})

	t.Run("should return 400 for a malformed payload", func(t *testing.T) {
		mockAuth := new(mockusecase.MockAuthUseCase)

		router := newAuthRouter(mockAuth)
		recorder := postJSON(t, router, "/api/auth/signup", map[string]string{
			"name": "Dana",
			// email and password missing
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockAuth.AssertNotCalled(t, "Signup")
	})
}

func TestAuthHandler_Signin(t *testing.T) {
	t.Run("should return 200 with token for valid credentials", func(t *testing.T) {
		mockAuth := new(mockusecase.MockAuthUseCase)
		mockAuth.On("Signin", mock.Anything, "dana@example.com", "secret1").
			Return(&portusecase.SessionResponse{Token: "issued-token"}, nil)

		router := newAuthRouter(mockAuth)
		recorder := postJSON(t, router, "/api/auth/signin", map[string]string{
			"email":    "dana@example.com",
			"password": "secret1",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "issued-token", body["token"])
	})

	t.Run("should return 401 for wrong credentials", func(t *testing.T) {
		mockAuth := new(mockusecase.MockAuthUseCase)
		mockAuth.On("Signin", mock.Anything, "dana@example.com", "wrong").
			Return(nil, errs.NewAuthError("dana@example.com", "password mismatch", errs.ErrInvalidCredentials))

		router := newAuthRouter(mockAuth)
		recorder := postJSON(t, router, "/api/auth/signin", map[string]string{
			"email":    "dana@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, float64(errs.CodeInvalidCredentials), body["code"])

		// The response must not reveal which factor failed or echo the email
		assert.Equal(t, "Invalid credentials", body["message"])
		assert.NotContains(t, recorder.Body.String(), "dana@example.com")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("should return the profile of the token's user", func(t *testing.T) {
		mockAuth := new(mockusecase.MockAuthUseCase)
		mockAuth.On("ResolveToken", mock.Anything, "valid-token").
			Return(&entity.User{ID: 42, Name: "Dana", Email: "dana@example.com"}, nil)
		mockAuth.On("Profile", mock.Anything, uint64(42)).
			Return(&portusecase.ProfileResponse{Name: "Dana", Email: "dana@example.com"}, nil)

		router := newAuthRouter(mockAuth)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer valid-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Dana", body["name"])
		assert.Equal(t, "dana@example.com", body["email"])
	})

	t.Run("should return 401 without an Authorization header", func(t *testing.T) {
		mockAuth := new(mockusecase.MockAuthUseCase)

		router := newAuthRouter(mockAuth)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockAuth.AssertNotCalled(t, "ResolveToken")
	})

	t.Run("should return 401 for a rejected token", func(t *testing.T) {
		mockAuth := new(mockusecase.MockAuthUseCase)
		mockAuth.On("ResolveToken", mock.Anything, "expired-token").
			Return(nil, errs.ErrInvalidToken)

		router := newAuthRouter(mockAuth)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer expired-token")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockAuth.AssertNotCalled(t, "Profile")
	})
}
