// services/stats_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gewnthar/launchtrack/models"
)

func TestSuccessRateByRocketScenario(t *testing.T) {
	// Rocket A: one success, one failure. Rocket B: one success.
	launches := []models.Launch{
		{ID: "1", Rocket: "rA", Success: boolPtr(true), DateUTC: timePtr(mustDate(t, "2021-01-05"))},
		{ID: "2", Rocket: "rA", Success: boolPtr(false), DateUTC: timePtr(mustDate(t, "2021-02-10"))},
		{ID: "3", Rocket: "rB", Success: boolPtr(true), DateUTC: timePtr(mustDate(t, "2021-01-20"))},
	}
	rocketNames := map[string]string{"rA": "Rocket A", "rB": "Rocket B"}

	want := map[string]models.RocketStats{
		"Rocket A": {TotalLaunches: 2, SuccessfulLaunches: 1, FailedLaunches: 1, SuccessRatePct: 50.0},
		"Rocket B": {TotalLaunches: 1, SuccessfulLaunches: 1, FailedLaunches: 0, SuccessRatePct: 100.0},
	}

	got := SuccessRateByRocket(launches, rocketNames)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SuccessRateByRocket mismatch (-want +got):\n%s", diff)
	}
}

func TestSuccessRateUnknownOutcomesExcludedFromDenominator(t *testing.T) {
	// Two decided outcomes (1 success, 1 failure) and two undetermined ones.
	launches := []models.Launch{
		{ID: "1", Rocket: "r1", Success: boolPtr(true)},
		{ID: "2", Rocket: "r1", Success: boolPtr(false)},
		{ID: "3", Rocket: "r1"},
		{ID: "4", Rocket: "r1", Upcoming: true},
	}

	got := SuccessRateByRocket(launches, map[string]string{"r1": "Starship"})

	stats := got["Starship"]
	if stats.TotalLaunches != 4 {
		t.Errorf("expected undetermined launches in total, got total %d", stats.TotalLaunches)
	}
	if stats.SuccessRatePct != 50.0 {
		t.Errorf("expected rate over decided outcomes only (50.0), got %v", stats.SuccessRatePct)
	}
}

func TestSuccessRateZeroDecidedOutcomesIsZero(t *testing.T) {
	launches := []models.Launch{
		{ID: "1", Rocket: "r1", Upcoming: true},
		{ID: "2", Rocket: "r1", Upcoming: true},
	}

	got := SuccessRateByRocket(launches, map[string]string{"r1": "Starship"})

	stats := got["Starship"]
	if stats.SuccessRatePct != 0.0 {
		t.Errorf("expected 0.0 rate when no outcomes are decided, got %v", stats.SuccessRatePct)
	}
}

func TestSuccessRateTotalsSumToLaunchCount(t *testing.T) {
	launches := testLaunches(t)
	launches = append(launches, models.Launch{ID: "l5"}) // no rocket ID at all

	got := SuccessRateByRocket(launches, map[string]string{"r1": "Falcon 9", "r2": "Falcon Heavy"})

	sum := 0
	for _, stats := range got {
		sum += stats.TotalLaunches
	}
	if sum != len(launches) {
		t.Errorf("per-rocket totals sum to %d, want %d", sum, len(launches))
	}
	if _, ok := got["Unknown"]; !ok {
		t.Error("expected launches without a rocket ID grouped under Unknown")
	}
}

func TestCountsByLaunchpad(t *testing.T) {
	launches := testLaunches(t)
	padNames := map[string]string{"p1": "Pad One", "p2": "Pad Two"}

	want := map[string]models.LaunchpadStats{
		"Pad One": {TotalLaunches: 2, SuccessfulLaunches: 2},
		"Pad Two": {TotalLaunches: 2, SuccessfulLaunches: 0},
	}

	got := CountsByLaunchpad(launches, padNames)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CountsByLaunchpad mismatch (-want +got):\n%s", diff)
	}
}

func TestLaunchFrequencyScenario(t *testing.T) {
	launches := []models.Launch{
		{ID: "1", DateUTC: timePtr(mustDate(t, "2021-01-05"))},
		{ID: "2", DateUTC: timePtr(mustDate(t, "2021-02-10"))},
		{ID: "3", DateUTC: timePtr(mustDate(t, "2021-01-20"))},
		{ID: "4"}, // no timestamp, skipped
	}

	want := models.LaunchFrequency{
		ByMonth: map[string]int{"2021-01": 2, "2021-02": 1},
		ByYear:  map[string]int{"2021": 3},
	}

	got := LaunchFrequency(launches)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LaunchFrequency mismatch (-want +got):\n%s", diff)
	}
}

func TestLaunchFrequencyEmptySetHasNoBuckets(t *testing.T) {
	got := LaunchFrequency(nil)
	if len(got.ByMonth) != 0 || len(got.ByYear) != 0 {
		t.Errorf("expected sparse (empty) buckets for an empty set, got %+v", got)
	}
}

func TestOverallStats(t *testing.T) {
	now := mustDate(t, "2022-01-01")
	launches := []models.Launch{
		{ID: "1", Success: boolPtr(true), DateUTC: timePtr(mustDate(t, "2021-01-05"))},
		{ID: "2", Success: boolPtr(false), DateUTC: timePtr(mustDate(t, "2021-02-10"))},
		{ID: "3", Upcoming: true, DateUTC: timePtr(mustDate(t, "2022-06-01"))},
		{ID: "4", DateUTC: timePtr(mustDate(t, "2022-07-01"))}, // unknown outcome, future date
	}

	want := models.OverallStats{
		TotalLaunches:      4,
		SuccessfulLaunches: 1,
		FailedLaunches:     1,
		UpcomingLaunches:   2,
		SuccessRatePct:     50.0,
	}

	got := OverallStats(launches, now)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OverallStats mismatch (-want +got):\n%s", diff)
	}

	// Invariant: successes + failures + undetermined == total.
	undetermined := got.TotalLaunches - got.SuccessfulLaunches - got.FailedLaunches
	if got.SuccessfulLaunches+got.FailedLaunches+undetermined != got.TotalLaunches {
		t.Error("overall counts do not partition the launch set")
	}
}

func TestOverallStatsEmptySet(t *testing.T) {
	got := OverallStats(nil, time.Now())
	if got.TotalLaunches != 0 || got.SuccessRatePct != 0.0 {
		t.Errorf("expected zeroed stats for an empty set, got %+v", got)
	}
}
