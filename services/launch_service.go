// services/launch_service.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gewnthar/launchtrack/cache"
	"github.com/gewnthar/launchtrack/models"
)

// Cache keys. The whole launch collection is cached as one unit: filtering
// and aggregation always need the full set, and per-record caching would add
// complexity disproportionate to a few thousand records.
const (
	launchesCacheKey   = "spacex_launches"
	rocketsCacheKey    = "spacex_rockets"
	launchpadsCacheKey = "spacex_launchpads"
)

// spacexAPI is the fetch collaborator. Satisfied by *spacex.Client; tests
// substitute a fake returning canned data or a forced failure.
type spacexAPI interface {
	GetAllLaunches(ctx context.Context) ([]models.Launch, error)
	GetAllRockets(ctx context.Context) ([]models.Rocket, error)
	GetAllLaunchpads(ctx context.Context) ([]models.Launchpad, error)
}

// LaunchService retrieves launch data, consulting the cache store before
// going to the SpaceX API. Cache failures are invisible to callers; a fetch
// failure when no valid cache entry exists surfaces as *spacex.APIError.
type LaunchService struct {
	api   spacexAPI
	cache cache.Store
	ttl   time.Duration
}

func NewLaunchService(api spacexAPI, store cache.Store, ttl time.Duration) *LaunchService {
	return &LaunchService{api: api, cache: store, ttl: ttl}
}

// ListLaunches returns the current launch set. Unless forceRefresh is set it
// tries the cache first; on a miss (including expiry and corruption) it
// fetches from the API once, stores the result best-effort, and returns the
// fresh set whether or not the store succeeded.
func (s *LaunchService) ListLaunches(ctx context.Context, forceRefresh bool) ([]models.Launch, error) {
	if !forceRefresh {
		if payload, ok := s.cache.Get(launchesCacheKey); ok {
			var launches []models.Launch
			if err := json.Unmarshal(payload, &launches); err == nil {
				return launches, nil
			}
			// Payload decoded as an envelope but not as launches: treat as
			// corrupt and fall through to a fresh fetch.
			log.Printf("Service: cached launch payload is unusable, refetching")
			s.cache.Invalidate(launchesCacheKey)
		}
	}

	launches, err := s.api.GetAllLaunches(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(launches); err == nil {
		s.cache.Put(launchesCacheKey, payload, s.ttl)
	}
	return launches, nil
}

// GetLaunchByID looks up a launch by its exact identifier. A missing ID is a
// normal outcome, returned as (nil, nil), distinct from a fetch failure.
func (s *LaunchService) GetLaunchByID(ctx context.Context, id string) (*models.Launch, error) {
	launches, err := s.ListLaunches(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range launches {
		if launches[i].ID == id {
			return &launches[i], nil
		}
	}
	return nil, nil
}

// RocketNames returns the rocket ID -> name mapping, cached under its own key.
func (s *LaunchService) RocketNames(ctx context.Context) (map[string]string, error) {
	if payload, ok := s.cache.Get(rocketsCacheKey); ok {
		var names map[string]string
		if err := json.Unmarshal(payload, &names); err == nil {
			return names, nil
		}
		s.cache.Invalidate(rocketsCacheKey)
	}

	rockets, err := s.api.GetAllRockets(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rockets))
	for _, r := range rockets {
		names[r.ID] = r.Name
	}
	if payload, err := json.Marshal(names); err == nil {
		s.cache.Put(rocketsCacheKey, payload, s.ttl)
	}
	return names, nil
}

// LaunchpadNames returns the launchpad ID -> name mapping, cached under its own key.
func (s *LaunchService) LaunchpadNames(ctx context.Context) (map[string]string, error) {
	if payload, ok := s.cache.Get(launchpadsCacheKey); ok {
		var names map[string]string
		if err := json.Unmarshal(payload, &names); err == nil {
			return names, nil
		}
		s.cache.Invalidate(launchpadsCacheKey)
	}

	launchpads, err := s.api.GetAllLaunchpads(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(launchpads))
	for _, lp := range launchpads {
		names[lp.ID] = lp.Name
	}
	if payload, err := json.Marshal(names); err == nil {
		s.cache.Put(launchpadsCacheKey, payload, s.ttl)
	}
	return names, nil
}

// ResolveFilterNames fills the filter's rocket/launchpad ID sets from the
// name criteria, fetching both catalogs concurrently when both are needed.
// Names match case-insensitively and exactly.
func (s *LaunchService) ResolveFilterNames(ctx context.Context, f *models.LaunchFilter) error {
	g, gctx := errgroup.WithContext(ctx)

	if f.RocketName != "" {
		g.Go(func() error {
			names, err := s.RocketNames(gctx)
			if err != nil {
				return err
			}
			f.RocketIDs = matchingIDs(names, f.RocketName)
			return nil
		})
	}
	if f.LaunchpadName != "" {
		g.Go(func() error {
			names, err := s.LaunchpadNames(gctx)
			if err != nil {
				return err
			}
			f.LaunchpadIDs = matchingIDs(names, f.LaunchpadName)
			return nil
		})
	}
	return g.Wait()
}

func matchingIDs(names map[string]string, want string) map[string]bool {
	ids := make(map[string]bool)
	for id, name := range names {
		if strings.EqualFold(name, want) {
			ids[id] = true
		}
	}
	return ids
}

// RefreshCache forces a refetch of the launch set and repopulates the cache.
// Returns the number of launches fetched.
func (s *LaunchService) RefreshCache(ctx context.Context) (int, error) {
	launches, err := s.ListLaunches(ctx, true)
	if err != nil {
		return 0, err
	}
	log.Printf("Service: cache refreshed with %d launches\n", len(launches))
	return len(launches), nil
}

// ClearCache invalidates every key the tracker uses.
func (s *LaunchService) ClearCache() {
	s.cache.Invalidate(launchesCacheKey)
	s.cache.Invalidate(rocketsCacheKey)
	s.cache.Invalidate(launchpadsCacheKey)
	log.Println("Service: cache cleared")
}
