// models/stats.go
package models

// RocketStats holds per-rocket launch statistics.
// Launches with an undetermined outcome count toward TotalLaunches but are
// excluded from the success-rate denominator.
type RocketStats struct {
	TotalLaunches      int     `json:"total_launches"`
	SuccessfulLaunches int     `json:"successful_launches"`
	FailedLaunches     int     `json:"failed_launches"`
	SuccessRatePct     float64 `json:"success_rate_percentage"`
}

// LaunchpadStats holds per-launchpad launch counts.
type LaunchpadStats struct {
	TotalLaunches      int `json:"total_launches"`
	SuccessfulLaunches int `json:"successful_launches"`
}

// LaunchFrequency holds sparse launch counts keyed by "YYYY-MM" and "YYYY".
// Buckets with zero launches are omitted.
type LaunchFrequency struct {
	ByMonth map[string]int `json:"by_month"`
	ByYear  map[string]int `json:"by_year"`
}

// OverallStats summarizes the full launch set.
type OverallStats struct {
	TotalLaunches      int     `json:"total_launches"`
	SuccessfulLaunches int     `json:"successful_launches"`
	FailedLaunches     int     `json:"failed_launches"`
	UpcomingLaunches   int     `json:"upcoming_launches"`
	SuccessRatePct     float64 `json:"overall_success_rate_percentage"`
}
