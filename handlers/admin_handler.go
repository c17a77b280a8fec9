// handlers/admin_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gewnthar/launchtrack/services"
)

// RefreshCacheHandler handles POST /api/admin/refresh-cache: force a refetch
// from the SpaceX API and repopulate the cache regardless of TTL.
func RefreshCacheHandler(svc *services.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
			return
		}

		count, err := svc.RefreshCache(r.Context())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Cache refreshed successfully with %d launches.", count),
		})
	}
}

// ClearCacheHandler handles POST /api/admin/clear-cache: drop every cached
// entry so the next read goes to the SpaceX API.
func ClearCacheHandler(svc *services.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
			return
		}

		svc.ClearCache()
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Cache cleared successfully."})
	}
}
