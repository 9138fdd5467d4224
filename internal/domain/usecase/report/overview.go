package report

import (
	"context"
	"fmt"
	"time"

	"github.com/moneyminder/finance-tracker/internal/domain/entity"
	errs "github.com/moneyminder/finance-tracker/internal/domain/error"
	"github.com/moneyminder/finance-tracker/internal/domain/port/usecase"
)

// Overview computes the three outputs of one query invocation: the
// fixed-window summary, the filtered primary list, and the side
// aggregate. See the port documentation for the exact contract.
func (u *ReportUseCase) Overview(ctx context.Context, userID uint64, filter usecase.Filter) (*usecase.Overview, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := u.timeProvider.Now().UTC()

	// Resolve filter defaults. Invalid main types fall back to the default
	// rather than failing; only month/year are strict (parse errors reject
	// the request upstream, before this point for year).
	mainType, err := entity.ParseTransactionType(filter.MainType)
	if err != nil {
		mainType = entity.DefaultType
	}

	tag := filter.Tag
	if tag == "" {
		tag = usecase.AllTags
	}

	year := filter.Year
	if year == 0 {
		year = now.Year()
	}

	var month time.Month
	monthSet := false
	if filter.Month != "" {
		parsed, err := time.Parse("January", filter.Month)
		if err != nil {
			u.logger.Warn("Rejecting overview query with unparseable month", map[string]any{
				"user_id": userID,
				"month":   filter.Month,
			})
			return nil, errs.NewFilterError("month", filter.Month, errs.ErrInvalidMonth)
		}
		month = parsed.Month()
		monthSet = true
	}

	// Full descending-by-timestamp snapshot of the user's transactions
	transactions, err := u.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to load transactions for overview", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	today := dateOf(now)

	// Summary: fixed day/month/year windows for the main type, computed
	// over the full set regardless of the range filter and tag.
	var dayTotal, monthTotal, yearTotal int64
	for _, tx := range transactions {
		if tx.Type != mainType {
			continue
		}
		ts := tx.CreatedAt.UTC()
		if dateOf(ts).Equal(today) {
			dayTotal += tx.AmountInCents
		}
		if ts.Year() == now.Year() && ts.Month() == now.Month() {
			monthTotal += tx.AmountInCents
		}
		if ts.Year() == now.Year() {
			yearTotal += tx.AmountInCents
		}
	}

	inRange := rangePredicate(filter.DateRange, today, monthSet, month, year)

	// Single pass over the range-filtered set, preserving order:
	// primary list (type+tag), side list, and the gain/loss totals.
	var gain, loss int64
	items := make([]usecase.MainItem, 0, len(transactions))
	sideItems := make([]usecase.SideItem, 0, len(transactions))

	for _, tx := range transactions {
		if !inRange(tx) {
			continue
		}

		if tx.IsIncome() {
			gain += tx.AmountInCents
		} else {
			loss += tx.AmountInCents
		}

		sideItems = append(sideItems, usecase.SideItem{
			Type:   string(tx.Type),
			Tag:    tx.Tag,
			Amount: tx.Amount(),
		})

		if tx.Type == mainType && (tag == usecase.AllTags || tx.Tag == tag) {
			items = append(items, usecase.MainItem{
				ID:     tx.ID,
				Tag:    tx.Tag,
				Amount: tx.Amount(),
			})
		}
	}

	overview := &usecase.Overview{
		Summary: usecase.Summary{
			Day:   entity.AmountInCentsToString(dayTotal),
			Month: entity.AmountInCentsToString(monthTotal),
			Year:  entity.AmountInCentsToString(yearTotal),
		},
		Items: items,
		Side: usecase.SideBundle{
			Month:     fmt.Sprintf("%s %d", filter.Month, year),
			DateRange: filter.DateRange,
			Balance:   entity.AmountInCentsToString(gain - loss),
			Gain:      entity.AmountInCentsToString(gain),
			Loss:      entity.AmountInCentsToString(loss),
			Items:     sideItems,
		},
	}

	u.logger.Debug("Computed transaction overview", map[string]any{
		"user_id":      userID,
		"transactions": len(transactions),
		"in_range":     len(sideItems),
		"main_items":   len(items),
		"main_type":    string(mainType),
		"date_range":   filter.DateRange,
	})

	return overview, nil
}

// rangePredicate builds the in_range check for one query. An explicit
// month/year restriction excludes mismatches before the date range
// check, which still applies to the survivors; unrecognized date
// range values pass everything through.
func rangePredicate(dateRange string, today time.Time, monthSet bool, month time.Month, year int) func(*entity.Transaction) bool {
	return func(tx *entity.Transaction) bool {
		ts := tx.CreatedAt.UTC()

		if monthSet {
			if ts.Month() != month || ts.Year() != year {
				return false
			}
		}

		d := dateOf(ts)
		switch dateRange {
		case usecase.RangeToday:
			return d.Equal(today)
		case usecase.RangeYesterday:
			return d.Equal(today.AddDate(0, 0, -1))
		case usecase.RangeLast7Days:
			// Inclusive: a transaction dated exactly 7 days ago is in range
			return !d.Before(today.AddDate(0, 0, -7))
		case usecase.RangeLast30Days:
			return !d.Before(today.AddDate(0, 0, -30))
		default:
			return true
		}
	}
}

// dateOf truncates a timestamp to its UTC calendar date
func dateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
