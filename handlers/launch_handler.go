// handlers/launch_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gewnthar/launchtrack/config"
	"github.com/gewnthar/launchtrack/models"
	"github.com/gewnthar/launchtrack/services"
	"github.com/gewnthar/launchtrack/spacex"
)

// Helper to respond with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper to respond with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps service-layer failures to HTTP statuses:
// a SpaceX API failure is 503 (retryable by the caller), anything else 500.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var apiErr *spacex.APIError
	if errors.As(err, &apiErr) {
		respondWithError(w, http.StatusServiceUnavailable, fmt.Sprintf("SpaceX API error: %v", err))
		return
	}
	respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Internal error: %v", err))
}

// parseLaunchFilter builds a LaunchFilter from query parameters. Dates accept
// RFC3339 or plain YYYY-MM-DD. Returns a descriptive error for malformed
// input so the handler can reject with 400 before any record access.
func parseLaunchFilter(r *http.Request) (*models.LaunchFilter, error) {
	q := r.URL.Query()
	filter := &models.LaunchFilter{
		RocketName:    q.Get("rocket_name"),
		LaunchpadName: q.Get("launchpad_name"),
		Limit:         config.AppConfig.Filter.DefaultLimit,
	}

	var err error
	if filter.DateFrom, err = parseTimeParam(q.Get("date_from")); err != nil {
		return nil, fmt.Errorf("invalid date_from: %w", err)
	}
	if filter.DateTo, err = parseTimeParam(q.Get("date_to")); err != nil {
		return nil, fmt.Errorf("invalid date_to: %w", err)
	}

	if v := q.Get("success"); v != "" {
		success, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid success value %q, expected true or false", v)
		}
		filter.Success = &success
	}
	if v := q.Get("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid limit value %q", v)
		}
	}
	if v := q.Get("offset"); v != "" {
		if filter.Offset, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid offset value %q", v)
		}
	}

	if err := filter.Validate(config.AppConfig.Filter.MaxLimit); err != nil {
		return nil, err
	}
	return filter, nil
}

func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("cannot parse %q, use RFC3339 or YYYY-MM-DD", value)
}

// GetLaunchesHandler serves GET /api/launches with filtering and pagination.
func GetLaunchesHandler(svc *services.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}

		filter, err := parseLaunchFilter(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.ResolveFilterNames(r.Context(), filter); err != nil {
			respondWithServiceError(w, err)
			return
		}

		launches, err := svc.ListLaunches(r.Context(), false)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		filtered := services.FilterLaunches(launches, filter)
		respondWithJSON(w, http.StatusOK, filtered)
	}
}

// LaunchSubrouteHandler serves everything under /api/launches/:
// "export" streams the filtered set as CSV, anything else is treated as a
// launch ID lookup.
func LaunchSubrouteHandler(svc *services.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
			return
		}

		// Expected path: api/launches/{id} or api/launches/export
		pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(pathParts) < 3 || pathParts[2] == "" {
			respondWithError(w, http.StatusBadRequest, "Invalid path. Expected /api/launches/{id}")
			return
		}

		if pathParts[2] == "export" {
			exportLaunchesCSV(svc, w, r)
			return
		}

		launch, err := svc.GetLaunchByID(r.Context(), pathParts[2])
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		if launch == nil {
			respondWithError(w, http.StatusNotFound, "Launch not found")
			return
		}
		respondWithJSON(w, http.StatusOK, launch)
	}
}

func exportLaunchesCSV(svc *services.LaunchService, w http.ResponseWriter, r *http.Request) {
	filter, err := parseLaunchFilter(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	// Export defaults to the full (clamped) set rather than the API page size.
	if r.URL.Query().Get("limit") == "" {
		filter.Limit = config.AppConfig.Filter.MaxLimit
	}

	if err := svc.ResolveFilterNames(r.Context(), filter); err != nil {
		respondWithServiceError(w, err)
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
	launchpadNames, err := svc.LaunchpadNames(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	filtered := services.FilterLaunches(launches, filter)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="launches.csv"`)
	if err := services.WriteLaunchesCSV(w, filtered, rocketNames, launchpadNames); err != nil {
		// Headers may already be out; just log.
		log.Printf("Handler: CSV export failed: %v", err)
	}
}
