// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/gewnthar/launchtrack/cache"
	"github.com/gewnthar/launchtrack/config"
	"github.com/gewnthar/launchtrack/database"
	"github.com/gewnthar/launchtrack/handlers"
	"github.com/gewnthar/launchtrack/services"
	"github.com/gewnthar/launchtrack/spacex"
)

func main() {
	log.Println("Starting SpaceX Launch Tracker Backend...")

	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment overrides from .env")
	}

	configPath := os.Getenv("LAUNCHTRACK_CONFIG")
	err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server port: %s, cache backend: %s, cache TTL: %s",
		config.AppConfig.Server.Port, config.AppConfig.Cache.Backend, config.AppConfig.Cache.TTL)

	store, cleanup, err := buildCacheStore()
	if err != nil {
		log.Fatalf("Error initializing cache store: %v", err)
	}
	defer cleanup()

	apiClient := spacex.NewClient(config.AppConfig.SpaceXAPI.BaseURL, config.AppConfig.SpaceXAPI.FetchTimeout)
	launchService := services.NewLaunchService(apiClient, store, config.AppConfig.Cache.TTL)

	// --- Setup HTTP routes ---
	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"status": "ok", "message": "launch tracker backend is healthy"}`)
	})

	http.HandleFunc("/api/launches", handlers.GetLaunchesHandler(launchService))
	http.HandleFunc("/api/launches/", handlers.LaunchSubrouteHandler(launchService)) // {id} and export

	http.HandleFunc("/api/stats/success-rate", handlers.GetSuccessRateByRocketHandler(launchService))
	http.HandleFunc("/api/stats/launchpads", handlers.GetLaunchpadStatsHandler(launchService))
	http.HandleFunc("/api/stats/frequency", handlers.GetLaunchFrequencyHandler(launchService))
	http.HandleFunc("/api/stats/overall", handlers.GetOverallStatsHandler(launchService))

	http.HandleFunc("/api/admin/refresh-cache", handlers.RefreshCacheHandler(launchService))
	http.HandleFunc("/api/admin/clear-cache", handlers.ClearCacheHandler(launchService))

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	err = http.ListenAndServe(serverAddr, nil)
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

// buildCacheStore picks the cache backend from config. When caching is
// disabled every read misses and every write is dropped, so each request
// fetches fresh from the SpaceX API.
func buildCacheStore() (cache.Store, func(), error) {
	noop := func() {}

	if !config.AppConfig.Cache.Enabled {
		log.Println("Caching is disabled; every request will hit the SpaceX API.")
		return cache.NewNoopStore(), noop, nil
	}

	switch config.AppConfig.Cache.Backend {
	case "database":
		if err := database.InitDB(config.AppConfig.Database); err != nil {
			return nil, noop, fmt.Errorf("database cache backend: %w", err)
		}
		if err := database.EnsureCacheSchema(); err != nil {
			database.CloseDB()
			return nil, noop, fmt.Errorf("database cache backend: %w", err)
		}
		return cache.NewDBStore(database.DB), database.CloseDB, nil
	default:
		store, err := cache.NewFileStore(config.AppConfig.Cache.Dir)
		if err != nil {
			return nil, noop, fmt.Errorf("file cache backend: %w", err)
		}
		return store, noop, nil
	}
}
