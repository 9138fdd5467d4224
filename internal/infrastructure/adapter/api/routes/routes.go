package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
	"github.com/moneyminder/finance-tracker/internal/domain/port/usecase"
	"github.com/moneyminder/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/moneyminder/finance-tracker/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
	authUseCase usecase.AuthUseCase,
	logger coreport.Logger,
	assetsDir string,
) {
	authRequired := middleware.Auth(authUseCase, logger)

	// Auth routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/signin", authHandler.Signin)
		authRoutes.GET("/me", authRequired, authHandler.Me)
	}

	// Transaction routes
	transactionRoutes := router.Group("/api/transactions")
	transactionRoutes.Use(authRequired)
	{
		transactionRoutes.POST("", transactionHandler.Create)
		transactionRoutes.GET("", transactionHandler.Overview)
	}

	// Operational endpoints
	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Frontend entry pages and their assets
	if assetsDir != "" {
		router.StaticFile("/", filepath.Join(assetsDir, "index.html"))
		router.StaticFile("/sign_in.html", filepath.Join(assetsDir, "sign_in.html"))
		router.StaticFile("/sign_up.html", filepath.Join(assetsDir, "sign_up.html"))
		router.Static("/assets", assetsDir)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
}
