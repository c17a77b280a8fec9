// models/rocket.go
package models

// Rocket represents a SpaceX rocket as returned by the v4 API.
// Only the fields the tracker consumes are decoded; the API returns many more.
type Rocket struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type,omitempty"`
	Active         bool    `json:"active"`
	Stages         int     `json:"stages,omitempty"`
	CostPerLaunch  int64   `json:"cost_per_launch,omitempty"`
	SuccessRatePct float64 `json:"success_rate_pct,omitempty"`
	Country        string  `json:"country,omitempty"`
	Company        string  `json:"company,omitempty"`
}
