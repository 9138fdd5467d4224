package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moneyminder/finance-tracker/internal/domain/entity"
	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	"github.com/moneyminder/finance-tracker/internal/domain/port/usecase"
	"github.com/moneyminder/finance-tracker/mocks/port/core"
	"github.com/moneyminder/finance-tracker/mocks/port/persistence"
)

// Fixed "now" for every test: June 15th 2025, 10:30 UTC
var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

const testUserID = uint64(7)

var nextTxID uint64

func tx(txType entity.TransactionType, tag string, cents int64, createdAt time.Time) *entity.Transaction {
	nextTxID++
	return &entity.Transaction{
		ID:            nextTxID,
		UserID:        testUserID,
		Type:          txType,
		Tag:           tag,
		AmountInCents: cents,
		CreatedAt:     createdAt,
	}
}

// newEngine wires the use case with a canned transaction snapshot
func newEngine(t *testing.T, transactions []*entity.Transaction) usecase.ReportUseCase {
	t.Helper()

	mockRepo := new(persistence.MockTransactionRepository)
	mockRepo.On("ListByUser", mock.Anything, testUserID).Return(transactions, nil)

	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(testNow)

	mockLogger := new(core.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()

	return NewReportUseCase(mockRepo, mockTimeProvider, mockLogger)
}

func TestOverview_Summary(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TypeExpense, "Groceries", 1000, testNow.Add(-time.Hour)),             // today
		tx(entity.TypeExpense, "Transport", 500, testNow.AddDate(0, 0, -1)),            // yesterday, same month
		tx(entity.TypeExpense, "Rent", 80000, time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)), // same year, other month
		tx(entity.TypeExpense, "Rent", 80000, time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)), // same calendar day, prior year
		tx(entity.TypeIncome, "Salary", 500000, testNow.Add(-2*time.Hour)),             // other type, ignored by summary
	}

	engine := newEngine(t, transactions)

	overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{MainType: "expense"})
	require.NoError(t, err)

	// Day counts only today's expenses; month adds yesterday; year adds February
	assert.Equal(t, "10.00", overview.Summary.Day)
	assert.Equal(t, "15.00", overview.Summary.Month)
	assert.Equal(t, "815.00", overview.Summary.Year)
}

func TestOverview_SummaryIndependentOfRangeAndTag(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TypeExpense, "Groceries", 1000, testNow.Add(-time.Hour)),
		tx(entity.TypeExpense, "Transport", 500, testNow.AddDate(0, 0, -3)),
	}

	engine := newEngine(t, transactions)

	// A narrow range filter and tag must not change the summary totals
	overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{
		DateRange: usecase.RangeToday,
		Tag:       "Transport",
		MainType:  "expense",
	})
	require.NoError(t, err)

	assert.Equal(t, "10.00", overview.Summary.Day)
	assert.Equal(t, "15.00", overview.Summary.Month)
	assert.Equal(t, "15.00", overview.Summary.Year)
}

func TestOverview_PrimaryListTypeAndTag(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TypeExpense, "Groceries", 1000, testNow.Add(-time.Hour)),
		tx(entity.TypeExpense, "Transport", 500, testNow.Add(-2*time.Hour)),
		tx(entity.TypeIncome, "Salary", 500000, testNow.Add(-3*time.Hour)),
	}

	engine := newEngine(t, transactions)

	t.Run("all tags keeps every main-type transaction", func(t *testing.T) {
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{
			DateRange: usecase.RangeToday,
			Tag:       usecase.AllTags,
			MainType:  "expense",
		})
		require.NoError(t, err)

		require.Len(t, overview.Items, 2)
		// Existing order (descending timestamp) is preserved
		assert.Equal(t, "Groceries", overview.Items[0].Tag)
		assert.Equal(t, "Transport", overview.Items[1].Tag)
	})

	t.Run("specific tag restricts the list", func(t *testing.T) {
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{
			DateRange: usecase.RangeToday,
			Tag:       "Transport",
			MainType:  "expense",
		})
		require.NoError(t, err)

		require.Len(t, overview.Items, 1)
		assert.Equal(t, "Transport", overview.Items[0].Tag)
		assert.Equal(t, "5.00", overview.Items[0].Amount)
	})

	t.Run("income main type excludes expenses", func(t *testing.T) {
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{
			DateRange: usecase.RangeToday,
			MainType:  "income",
		})
		require.NoError(t, err)

		require.Len(t, overview.Items, 1)
		assert.Equal(t, "Salary", overview.Items[0].Tag)
		assert.Equal(t, "5000.00", overview.Items[0].Amount)
	})
}

func TestOverview_SideAggregate(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TypeIncome, "Salary", 500000, testNow.Add(-time.Hour)),
		tx(entity.TypeExpense, "Rent", 80000, testNow.Add(-2*time.Hour)),
		tx(entity.TypeExpense, "Groceries", 2550, testNow.Add(-3*time.Hour)),
	}

	engine := newEngine(t, transactions)

	overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{
		DateRange: usecase.RangeToday,
		MainType:  "expense",
	})
	require.NoError(t, err)

	// Side list contains every range-filtered transaction, both types
	require.Len(t, overview.Side.Items, 3)
	assert.Equal(t, "income", overview.Side.Items[0].Type)

	assert.Equal(t, "5000.00", overview.Side.Gain)
	assert.Equal(t, "825.50", overview.Side.Loss)
	assert.Equal(t, "4174.50", overview.Side.Balance)
	assert.Equal(t, usecase.RangeToday, overview.Side.DateRange)
}

func TestOverview_BalanceEqualsGainMinusLoss(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TypeIncome, "Salary", 123456, testNow.Add(-time.Hour)),
		tx(entity.TypeExpense, "Rent", 654321, testNow.AddDate(0, 0, -2)),
		tx(entity.TypeIncome, "Gift", 999, testNow.AddDate(0, 0, -20)),
		tx(entity.TypeExpense, "Travel", 1, testNow.AddDate(0, 0, -40)),
	}

	engine := newEngine(t, transactions)

	ranges := []string{"", usecase.RangeToday, usecase.RangeYesterday, usecase.RangeLast7Days, usecase.RangeLast30Days, "Banana"}
	for _, dateRange := range ranges {
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{DateRange: dateRange})
		require.NoError(t, err)

		gain, err := entity.ValidateAndConvertAmount(overview.Side.Gain)
		require.NoError(t, err)
		loss, err := entity.ValidateAndConvertAmount(overview.Side.Loss)
		require.NoError(t, err)

		assert.Equal(t, entity.AmountInCentsToString(gain-loss), overview.Side.Balance,
			"balance must equal gain minus loss for dateRange %q", dateRange)
	}
}

func TestOverview_DateRangeWindows(t *testing.T) {
	exactly7DaysAgo := tx(entity.TypeExpense, "Boundary", 700, testNow.AddDate(0, 0, -7))
	eightDaysAgo := tx(entity.TypeExpense, "Outside", 800, testNow.AddDate(0, 0, -8))
	yesterday := tx(entity.TypeExpense, "Yesterday", 100, testNow.AddDate(0, 0, -1))
	today := tx(entity.TypeExpense, "Today", 200, testNow.Add(-time.Minute))

	transactions := []*entity.Transaction{today, yesterday, exactly7DaysAgo, eightDaysAgo}
	engine := newEngine(t, transactions)

	query := func(dateRange string) *usecase.Overview {
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{DateRange: dateRange})
		require.NoError(t, err)
		return overview
	}

	t.Run("today matches only the current calendar day", func(t *testing.T) {
		overview := query(usecase.RangeToday)
		require.Len(t, overview.Items, 1)
		assert.Equal(t, "Today", overview.Items[0].Tag)
	})

	t.Run("yesterday matches exactly one day before", func(t *testing.T) {
		overview := query(usecase.RangeYesterday)
		require.Len(t, overview.Items, 1)
		assert.Equal(t, "Yesterday", overview.Items[0].Tag)
	})

	t.Run("last 7 days includes the 7-day boundary and excludes day 8", func(t *testing.T) {
		overview := query(usecase.RangeLast7Days)
		tags := make([]string, 0, len(overview.Items))
		for _, item := range overview.Items {
			tags = append(tags, item.Tag)
		}
		assert.Equal(t, []string{"Today", "Yesterday", "Boundary"}, tags)
	})

	t.Run("last 30 days includes everything here", func(t *testing.T) {
		overview := query(usecase.RangeLast30Days)
		assert.Len(t, overview.Items, 4)
	})

	t.Run("unrecognized range passes everything through", func(t *testing.T) {
		overview := query("Banana")
		assert.Len(t, overview.Items, 4)
	})
}

func TestOverview_MonthFilter(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TypeExpense, "June", 100, testNow.Add(-time.Hour)),
		tx(entity.TypeExpense, "February", 200, time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)),
		tx(entity.TypeExpense, "LastYearFeb", 300, time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)),
	}

	engine := newEngine(t, transactions)

	t.Run("month with explicit year restricts to that calendar month", func(t *testing.T) {
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{
			Month: "February",
			Year:  2024,
		})
		require.NoError(t, err)

		require.Len(t, overview.Items, 1)
		assert.Equal(t, "LastYearFeb", overview.Items[0].Tag)
		assert.Equal(t, "February 2024", overview.Side.Month)
	})

	t.Run("month defaults to the current year", func(t *testing.T) {
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{Month: "February"})
		require.NoError(t, err)

		require.Len(t, overview.Items, 1)
		assert.Equal(t, "February", overview.Items[0].Tag)
		assert.Equal(t, "February 2025", overview.Side.Month)
	})

	t.Run("month narrows the date range rather than replacing it", func(t *testing.T) {
		// Both restrictions apply: February matches the month but falls
		// outside "Today", so nothing survives
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{
			Month:     "February",
			DateRange: usecase.RangeToday,
		})
		require.NoError(t, err)

		assert.Empty(t, overview.Items)
		assert.Empty(t, overview.Side.Items)
	})

	t.Run("month with a permissive date range keeps the month restriction", func(t *testing.T) {
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{
			Month:     "February",
			DateRange: "Whenever",
		})
		require.NoError(t, err)

		require.Len(t, overview.Items, 1)
		assert.Equal(t, "February", overview.Items[0].Tag)
	})

	t.Run("malformed month fails the request", func(t *testing.T) {
		_, err := engine.Overview(context.Background(), testUserID, usecase.Filter{Month: "Januray"})
		assert.ErrorIs(t, err, errs.ErrInvalidMonth)
	})
}

func TestOverview_Defaults(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TypeExpense, "Groceries", 1000, testNow.Add(-time.Hour)),
		tx(entity.TypeIncome, "Salary", 2000, testNow.Add(-time.Hour)),
	}

	engine := newEngine(t, transactions)

	t.Run("empty main type defaults to expense", func(t *testing.T) {
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{})
		require.NoError(t, err)

		require.Len(t, overview.Items, 1)
		assert.Equal(t, "Groceries", overview.Items[0].Tag)
	})

	t.Run("invalid main type falls back to expense", func(t *testing.T) {
		overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{MainType: "transfer"})
		require.NoError(t, err)

		require.Len(t, overview.Items, 1)
		assert.Equal(t, "Groceries", overview.Items[0].Tag)
	})

	t.Run("period never changes the computation", func(t *testing.T) {
		base, err := engine.Overview(context.Background(), testUserID, usecase.Filter{})
		require.NoError(t, err)

		withPeriod, err := engine.Overview(context.Background(), testUserID, usecase.Filter{Period: "month"})
		require.NoError(t, err)

		assert.Equal(t, base, withPeriod)
	})
}

func TestOverview_Idempotence(t *testing.T) {
	transactions := []*entity.Transaction{
		tx(entity.TypeIncome, "Salary", 100000, testNow.Add(-time.Hour)),
		tx(entity.TypeExpense, "Rent", 80000, testNow.AddDate(0, 0, -5)),
	}

	engine := newEngine(t, transactions)
	filter := usecase.Filter{DateRange: usecase.RangeLast7Days, MainType: "income"}

	first, err := engine.Overview(context.Background(), testUserID, filter)
	require.NoError(t, err)

	second, err := engine.Overview(context.Background(), testUserID, filter)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOverview_EmptySet(t *testing.T) {
	engine := newEngine(t, nil)

	overview, err := engine.Overview(context.Background(), testUserID, usecase.Filter{})
	require.NoError(t, err)

	assert.Equal(t, "0.00", overview.Summary.Day)
	assert.Equal(t, "0.00", overview.Summary.Year)
	assert.Empty(t, overview.Items)
	assert.Empty(t, overview.Side.Items)
	assert.Equal(t, "0.00", overview.Side.Balance)
}

func TestOverview_Errors(t *testing.T) {
	t.Run("zero user ID is rejected", func(t *testing.T) {
		engine := newEngine(t, nil)
		_, err := engine.Overview(context.Background(), 0, usecase.Filter{})
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("load failure is terminal", func(t *testing.T) {
		mockRepo := new(persistence.MockTransactionRepository)
		mockRepo.On("ListByUser", mock.Anything, testUserID).Return(nil, errs.ErrDatabaseConnection)

		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(testNow)

		mockLogger := new(core.MockLogger)
		mockLogger.On("Error", mock.Anything, mock.Anything).Return()

		engine := NewReportUseCase(mockRepo, mockTimeProvider, mockLogger)

		_, err := engine.Overview(context.Background(), testUserID, usecase.Filter{})
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
