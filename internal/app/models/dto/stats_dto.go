package dto

// OverviewResponse feeds the admin dashboard summary cards.
type OverviewResponse struct {
	TotalStudents   int `json:"totalStudents"`
	BookingsToday   int `json:"bookingsToday"`
	OpenComplaints  int `json:"openComplaints"`
	FeedbackEntries int `json:"feedbackEntries"`
}

// DistributionResponse is a generic bucket-count payload used for the
// meal, rating, and complaint-status charts.
type DistributionResponse struct {
	Buckets map[string]int `json:"buckets"`
	Total   int            `json:"total"`
}

// SeriesPoint is one day of a rolling booking series.
type SeriesPoint struct {
	Date  string `json:"date" example:"2024-05-01"`
	Count int    `json:"count"`
}

// SeriesResponse is the day-over-day booking chart payload.
type SeriesResponse struct {
	Points []SeriesPoint `json:"points"`
}
