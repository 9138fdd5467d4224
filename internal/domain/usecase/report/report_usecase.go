package report

import (
	coreport "github.com/moneyminder/finance-tracker/internal/domain/port/core"
	"github.com/moneyminder/finance-tracker/internal/domain/port/persistence"
	"github.com/moneyminder/finance-tracker/internal/domain/port/usecase"
)

// ReportUseCase implements the transaction query/aggregation engine.
// It never mutates state: each invocation reads one snapshot of the
// user's transactions and computes everything in memory.
type ReportUseCase struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewReportUseCase creates a new report use case instance
func NewReportUseCase(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.ReportUseCase {
	return &ReportUseCase{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}
