// models/launch.go
package models

import "time"

// Launch represents a single SpaceX launch as returned by the v4 API.
// Success is a tri-state: true, false, or nil for launches that have not
// flown yet (upcoming) or whose outcome is not recorded.
type Launch struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	DateUTC      *time.Time `json:"date_utc,omitempty"`
	DateLocal    string     `json:"date_local,omitempty"`
	Success      *bool      `json:"success,omitempty"`
	Rocket       string     `json:"rocket,omitempty"`    // rocket ID
	Launchpad    string     `json:"launchpad,omitempty"` // launchpad ID
	FlightNumber int        `json:"flight_number,omitempty"`
	Details      string     `json:"details,omitempty"`
	Upcoming     bool       `json:"upcoming"`
}

// LaunchCSVRow is the flattened shape used for CSV export.
type LaunchCSVRow struct {
	ID            string `csv:"id"`
	Name          string `csv:"name"`
	DateUTC       string `csv:"date_utc"`
	RocketName    string `csv:"rocket"`
	LaunchpadName string `csv:"launchpad"`
	Success       string `csv:"success"` // "true", "false", or "" when undetermined
	Upcoming      bool   `csv:"upcoming"`
	FlightNumber  int    `csv:"flight_number"`
}
