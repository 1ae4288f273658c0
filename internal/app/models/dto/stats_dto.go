package dto

// WingActivityStats is one row of the per-wing activity count aggregation
type WingActivityStats struct {
	WingID        int64  `json:"wing_id"`
	WingName      string `json:"wing_name"`
	WingSlug      string `json:"wing_slug"`
	ActivityCount int    `json:"activity_count"`
}

// ActivityStatisticsResponse is the statistics endpoint body. AvailableYears
// always covers all data regardless of the year filter, so clients can offer
// year discovery.
type ActivityStatisticsResponse struct {
	Statistics     []WingActivityStats `json:"statistics"`
	AvailableYears []int               `json:"available_years"`
	FilteredYear   *int                `json:"filtered_year"`
}
