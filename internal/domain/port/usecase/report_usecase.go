package usecase

import (
	"context"
)

// AllTags is the sentinel tag value meaning "no tag restriction"
const AllTags = "All Tags"

// Recognized date range window names. Any other value means no restriction.
const (
	RangeToday      = "Today"
	RangeYesterday  = "Yesterday"
	RangeLast7Days  = "Last 7 Days"
	RangeLast30Days = "Last 30 Days"
)

// Filter is the ad-hoc filter specification for the transaction overview.
// All fields are optional; zero values fall back to permissive defaults.
type Filter struct {
	// Period is accepted for API compatibility but does not change the
	// computation. The summary always reports fixed day/month/year windows.
	Period string

	// DateRange selects a trailing window relative to the current date.
	// Unrecognized values pass every transaction through.
	DateRange string

	// Month is a month name such as "January". When set, it restricts
	// to the Month/Year calendar month in addition to DateRange.
	Month string

	// Year is used only together with Month. Zero means the current year.
	Year int

	// Tag restricts the primary list to one tag; AllTags means no restriction.
	Tag string

	// MainType selects the transaction type for the summary and primary list.
	MainType string
}

// Summary holds fixed-window totals for the main transaction type,
// formatted with 2 decimal places.
type Summary struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// MainItem is a primary-list projection of a transaction
type MainItem struct {
	ID     uint64 `json:"id"`
	Tag    string `json:"tag"`
	Amount string `json:"amount"`
}

// SideItem is a side-list projection of a range-filtered transaction
type SideItem struct {
	Type   string `json:"type"`
	Tag    string `json:"tag"`
	Amount string `json:"amount"`
}

// SideBundle is the secondary aggregate returned alongside the primary list
type SideBundle struct {
	Month     string     `json:"month"`
	DateRange string     `json:"dateRange"`
	Balance   string     `json:"balance"`
	Gain      string     `json:"gain"`
	Loss      string     `json:"loss"`
	Items     []SideItem `json:"items"`
}

// Overview is the full result of one query/aggregation invocation
type Overview struct {
	Summary Summary    `json:"summary"`
	Items   []MainItem `json:"items"`
	Side    SideBundle `json:"side"`
}

// ReportUseCase defines the transaction query/aggregation engine
type ReportUseCase interface {
	// Overview loads the user's complete transaction set and computes the
	// summary totals, the filtered primary list, and the side aggregate.
	// The computation is read-only and deterministic given the stored
	// transactions, the filter, and the current date.
	//
	// Possible errors:
	// - ErrInvalidMonth: If Filter.Month is set but not a month name
	// - ErrDatabaseConnection: If the transaction load fails
	Overview(ctx context.Context, userID uint64, filter Filter) (*Overview, error)
}
