// services/stats.go
package services

import (
	"fmt"
	"math"
	"time"

	"github.com/gewnthar/launchtrack/models"
)

// unknownGroup labels launches whose rocket or launchpad ID is missing or
// not present in the catalog mapping.
const unknownGroup = "Unknown"

// SuccessRateByRocket groups launches by rocket and computes per-rocket
// counts and success rates. Every launch counts toward its rocket's total;
// launches with an undetermined outcome are excluded from the rate
// denominator. When a rocket has no decided outcomes at all its rate is
// reported as 0.0 rather than omitted.
func SuccessRateByRocket(launches []models.Launch, rocketNames map[string]string) map[string]models.RocketStats {
	stats := make(map[string]models.RocketStats)

	for _, l := range launches {
		name := groupName(l.Rocket, rocketNames)
		s := stats[name]
		s.TotalLaunches++
		if l.Success != nil {
			if *l.Success {
				s.SuccessfulLaunches++
			} else {
				s.FailedLaunches++
			}
		}
		stats[name] = s
	}

	for name, s := range stats {
		s.SuccessRatePct = successRatePct(s.SuccessfulLaunches, s.FailedLaunches)
		stats[name] = s
	}
	return stats
}

// CountsByLaunchpad groups launches by launchpad with total and successful
// counts per pad.
func CountsByLaunchpad(launches []models.Launch, launchpadNames map[string]string) map[string]models.LaunchpadStats {
	stats := make(map[string]models.LaunchpadStats)

	for _, l := range launches {
		name := groupName(l.Launchpad, launchpadNames)
		s := stats[name]
		s.TotalLaunches++
		if l.Success != nil && *l.Success {
			s.SuccessfulLaunches++
		}
		stats[name] = s
	}
	return stats
}

// LaunchFrequency buckets launches by month ("YYYY-MM") and year ("YYYY") of
// the UTC launch timestamp. Buckets with zero launches are omitted; launches
// without a timestamp are skipped. The keys sort lexicographically in
// chronological order, which is also how encoding/json emits them.
func LaunchFrequency(launches []models.Launch) models.LaunchFrequency {
	freq := models.LaunchFrequency{
		ByMonth: make(map[string]int),
		ByYear:  make(map[string]int),
	}
	for _, l := range launches {
		if l.DateUTC == nil {
			continue
		}
		freq.ByMonth[l.DateUTC.Format("2006-01")]++
		freq.ByYear[fmt.Sprintf("%04d", l.DateUTC.Year())]++
	}
	return freq
}

// OverallStats computes the single aggregate over the full set. A launch is
// upcoming when its upcoming flag is set, or when its outcome is unknown and
// its timestamp lies after now.
func OverallStats(launches []models.Launch, now time.Time) models.OverallStats {
	var stats models.OverallStats
	stats.TotalLaunches = len(launches)

	for _, l := range launches {
		switch {
		case l.Success != nil && *l.Success:
			stats.SuccessfulLaunches++
		case l.Success != nil:
			stats.FailedLaunches++
		}
		if l.Upcoming || (l.Success == nil && l.DateUTC != nil && l.DateUTC.After(now)) {
			stats.UpcomingLaunches++
		}
	}

	stats.SuccessRatePct = successRatePct(stats.SuccessfulLaunches, stats.FailedLaunches)
	return stats
}

func groupName(id string, names map[string]string) string {
	if id == "" {
		return unknownGroup
	}
	if name, ok := names[id]; ok {
		return name
	}
	return unknownGroup
}

// successRatePct returns successes/(successes+failures) as a percentage
// rounded to two decimals, or 0.0 when there are no decided outcomes.
func successRatePct(successes, failures int) float64 {
	decided := successes + failures
	if decided == 0 {
		return 0.0
	}
	rate := float64(successes) / float64(decided) * 100
	return math.Round(rate*100) / 100
}
