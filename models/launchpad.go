// models/launchpad.go
package models

// Launchpad represents a SpaceX launchpad as returned by the v4 API.
type Launchpad struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	FullName        string  `json:"full_name,omitempty"`
	Locality        string  `json:"locality,omitempty"`
	Region          string  `json:"region,omitempty"`
	Latitude        float64 `json:"latitude,omitempty"`
	Longitude       float64 `json:"longitude,omitempty"`
	LaunchAttempts  int     `json:"launch_attempts,omitempty"`
	LaunchSuccesses int     `json:"launch_successes,omitempty"`
	Status          string  `json:"status,omitempty"`
}
