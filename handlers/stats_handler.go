// handlers/stats_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gewnthar/launchtrack/services"
)

// GetSuccessRateByRocketHandler serves GET /api/stats/success-rate.
func GetSuccessRateByRocketHandler(svc *services.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}

		launches, err := svc.ListLaunches(r.Context(), false)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		rocketNames, err := svc.RocketNames(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, services.SuccessRateByRocket(launches, rocketNames))
	}
}

// GetLaunchpadStatsHandler serves GET /api/stats/launchpads.
func GetLaunchpadStatsHandler(svc *services.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}

		launches, err := svc.ListLaunches(r.Context(), false)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		launchpadNames, err := svc.LaunchpadNames(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, services.CountsByLaunchpad(launches, launchpadNames))
	}
}

// GetLaunchFrequencyHandler serves GET /api/stats/frequency.
func GetLaunchFrequencyHandler(svc *services.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}

		launches, err := svc.ListLaunches(r.Context(), false)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, services.LaunchFrequency(launches))
	}
}

// GetOverallStatsHandler serves GET /api/stats/overall.
func GetOverallStatsHandler(svc *services.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}

		launches, err := svc.ListLaunches(r.Context(), false)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, services.OverallStats(launches, time.Now().UTC()))
	}
}
