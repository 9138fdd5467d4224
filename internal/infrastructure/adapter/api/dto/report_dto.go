package dto

// OverviewQuery represents the query parameters accepted by the
// transaction overview endpoint. All parameters are optional.
type OverviewQuery struct {
	Period    string `form:"period"`
	DateRange string `form:"dateRange"`
	Month     string `form:"month"`
	Year      string `form:"year"`
	Tag       string `form:"tag"`
	Type      string `form:"type"`
}
