// models/filter.go
package models

import (
	"fmt"
	"time"
)

// LaunchFilter holds the optional criteria for filtering launches.
// Absent (nil/empty) fields impose no constraint; present fields are
// AND-combined.
type LaunchFilter struct {
	DateFrom      *time.Time `json:"date_from,omitempty"`
	DateTo        *time.Time `json:"date_to,omitempty"`
	RocketName    string     `json:"rocket_name,omitempty"`
	Success       *bool      `json:"success,omitempty"`
	LaunchpadName string     `json:"launchpad_name,omitempty"`
	Limit         int        `json:"limit"`
	Offset        int        `json:"offset"`

	// Resolved ID sets for the name criteria. Populated by the service layer
	// from the rocket/launchpad catalogs before filtering; empty means the
	// corresponding name criterion is unset or matched nothing.
	RocketIDs    map[string]bool `json:"-"`
	LaunchpadIDs map[string]bool `json:"-"`
}

// Validate checks the filter for malformed input and clamps Limit to maxLimit.
// It must be called before any record access; a validation failure means no
// filtering work is performed at all.
func (f *LaunchFilter) Validate(maxLimit int) error {
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return fmt.Errorf("date_from (%s) is after date_to (%s)",
			f.DateFrom.Format(time.RFC3339), f.DateTo.Format(time.RFC3339))
	}
	if f.Offset < 0 {
		return fmt.Errorf("offset must not be negative, got %d", f.Offset)
	}
	if f.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", f.Limit)
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	return nil
}
