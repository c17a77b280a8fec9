// services/filter.go
package services

import (
	"github.com/gewnthar/launchtrack/models"
)

// FilterLaunches applies the filter to the launch set and paginates the
// result. It is a pure function: order-preserving, no side effects, and the
// same input always yields the same output. A launch is kept iff every
// present criterion matches.
func FilterLaunches(launches []models.Launch, f *models.LaunchFilter) []models.Launch {
	matched := make([]models.Launch, 0, len(launches))
	for _, l := range launches {
		if matchesFilter(l, f) {
			matched = append(matched, l)
		}
	}

	// Pagination: drop the first Offset matches, keep at most Limit.
	if f.Offset >= len(matched) {
		return []models.Launch{}
	}
	matched = matched[f.Offset:]
	if f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched
}

func matchesFilter(l models.Launch, f *models.LaunchFilter) bool {
	// Date bounds are inclusive and apply to the UTC launch timestamp.
	// A launch without a timestamp never matches a date criterion.
	if f.DateFrom != nil {
		if l.DateUTC == nil || l.DateUTC.Before(*f.DateFrom) {
			return false
		}
	}
	if f.DateTo != nil {
		if l.DateUTC == nil || l.DateUTC.After(*f.DateTo) {
			return false
		}
	}

	// Tri-state success: an undetermined outcome never matches an explicit
	// success=true or success=false criterion.
	if f.Success != nil {
		if l.Success == nil || *l.Success != *f.Success {
			return false
		}
	}

	if f.RocketName != "" && !f.RocketIDs[l.Rocket] {
		return false
	}
	if f.LaunchpadName != "" && !f.LaunchpadIDs[l.Launchpad] {
		return false
	}

	return true
}
