package models

// DashboardSummary is the unfiltered dashboard payload. The month-over-month
// pairs compare the current calendar month against the previous one; when the
// previous month's denominator is zero both the rate and the change are zero.
type DashboardSummary struct {
	Members           int64   `json:"members"`
	Sessions          int64   `json:"sessions"`
	Exercises         int64   `json:"exercises"`
	Trainers          int64   `json:"trainers"`
	ActiveMemberships int64   `json:"activeMemberships"`
	Retention         float64 `json:"retention"`
	RetentionChange   float64 `json:"retention_change"`
	GrowthRate        float64 `json:"growth_rate"`
	GrowthChange      float64 `json:"growth_change"`
	Revenue           float64 `json:"revenue"`
	RevenueChange     float64 `json:"revenue_change"`
	AvgDuration       float64 `json:"avg_duration"`
	DurationChange    float64 `json:"duration_change"`
}
