package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/moneyminder/finance-tracker/internal/domain/error"
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
	"github.com/moneyminder/finance-tracker/internal/domain/port/usecase"
	"github.com/moneyminder/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/moneyminder/finance-tracker/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	reportUseCase      usecase.ReportUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionUseCase usecase.TransactionUseCase,
	reportUseCase usecase.ReportUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		reportUseCase:      reportUseCase,
		logger:             logger,
	}
}

// Create handles the POST /api/transactions endpoint
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingToken),
			Message: "Authentication required",
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid transaction request format", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	transaction, err := h.transactionUseCase.CreateTransaction(c.Request.Context(), userID, usecase.CreateTransactionRequest{
		Type:        req.Type,
		Tag:         req.Tag,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to create transaction", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err, status),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionResponse{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Tag:         transaction.Tag,
		Amount:      transaction.Amount(),
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// Overview handles the GET /api/transactions endpoint
func (h *TransactionHandler) Overview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingToken),
			Message: "Authentication required",
		})
		return
	}

	var query dto.OverviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid query parameters: " + err.Error(),
		})
		return
	}

	// An absent dateRange means the current day. A present-but-empty or
	// unrecognized value places no restriction.
	if !c.Request.URL.Query().Has("dateRange") {
		query.DateRange = usecase.RangeToday
	}

	filter, err := filterFromQuery(query)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err, http.StatusBadRequest),
		})
		return
	}

	overview, err := h.reportUseCase.Overview(c.Request.Context(), userID, filter)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to compute transaction overview", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err, status),
		})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// filterFromQuery translates the raw query parameters into an engine filter
func filterFromQuery(query dto.OverviewQuery) (usecase.Filter, error) {
	filter := usecase.Filter{
		Period:    query.Period,
		DateRange: query.DateRange,
		Month:     query.Month,
		Tag:       query.Tag,
		MainType:  query.Type,
	}

	if query.Year != "" {
		year, err := strconv.Atoi(query.Year)
		if err != nil {
			return usecase.Filter{}, domainerr.NewFilterError("year", query.Year, domainerr.ErrInvalidYear)
		}
		filter.Year = year
	}

	return filter, nil
}
