// services/launch_service_test.go
package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gewnthar/launchtrack/cache"
	"github.com/gewnthar/launchtrack/models"
	"github.com/gewnthar/launchtrack/spacex"
)

// fakeAPI is a canned-data fetch collaborator that counts calls and can be
// switched to a forced failure.
type fakeAPI struct {
	launches   []models.Launch
	rockets    []models.Rocket
	launchpads []models.Launchpad

	launchCalls    int
	rocketCalls    int
	launchpadCalls int

	err error
}

func (f *fakeAPI) GetAllLaunches(ctx context.Context) ([]models.Launch, error) {
	f.launchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.launches, nil
}

func (f *fakeAPI) GetAllRockets(ctx context.Context) ([]models.Rocket, error) {
	f.rocketCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rockets, nil
}

func (f *fakeAPI) GetAllLaunchpads(ctx context.Context) ([]models.Launchpad, error) {
	f.launchpadCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.launchpads, nil
}

func newTestService(t *testing.T, api *fakeAPI) *LaunchService {
	t.Helper()
	store, err := cache.NewFileStore(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return NewLaunchService(api, store, time.Hour)
}

func TestListLaunchesCacheMissThenHit(t *testing.T) {
	api := &fakeAPI{launches: testLaunches(t)}
	svc := newTestService(t, api)
	ctx := context.Background()

	first, err := svc.ListLaunches(ctx, false)
	if err != nil {
		t.Fatalf("first ListLaunches failed: %v", err)
	}
	if api.launchCalls != 1 {
		t.Fatalf("expected exactly one fetch on a cold cache, got %d", api.launchCalls)
	}

	second, err := svc.ListLaunches(ctx, false)
	if err != nil {
		t.Fatalf("second ListLaunches failed: %v", err)
	}
	if api.launchCalls != 1 {
		t.Fatalf("expected zero additional fetches within the TTL window, got %d", api.launchCalls)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached set differs from fetched set (-first +second):\n%s", diff)
	}
}

func TestListLaunchesDisabledCacheFetchesEveryTime(t *testing.T) {
	api := &fakeAPI{launches: testLaunches(t)}
	svc := NewLaunchService(api, cache.NewNoopStore(), time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.ListLaunches(ctx, false); err != nil {
			t.Fatalf("ListLaunches call %d failed: %v", i+1, err)
		}
	}
	if api.launchCalls != 3 {
		t.Fatalf("expected a fetch per call with caching disabled, got %d", api.launchCalls)
	}
}

func TestListLaunchesForceRefreshBypassesCache(t *testing.T) {
	api := &fakeAPI{launches: testLaunches(t)}
	svc := newTestService(t, api)
	ctx := context.Background()

	if _, err := svc.ListLaunches(ctx, false); err != nil {
		t.Fatalf("ListLaunches failed: %v", err)
	}
	if _, err := svc.ListLaunches(ctx, true); err != nil {
		t.Fatalf("forced ListLaunches failed: %v", err)
	}
	if api.launchCalls != 2 {
		t.Fatalf("expected force refresh to fetch again, got %d calls", api.launchCalls)
	}
}

func TestListLaunchesFetchFailurePropagates(t *testing.T) {
	apiErr := &spacex.APIError{Endpoint: "launches", Err: errors.New("connection refused")}
	api := &fakeAPI{err: apiErr}
	svc := newTestService(t, api)

	_, err := svc.ListLaunches(context.Background(), false)
	if err == nil {
		t.Fatal("expected an error when both cache and source fail")
	}
	var got *spacex.APIError
	if !errors.As(err, &got) {
		t.Fatalf("expected *spacex.APIError, got %T: %v", err, err)
	}
}

func TestListLaunchesReturnsFreshSetWhenCacheWriteFails(t *testing.T) {
	api := &fakeAPI{launches: testLaunches(t)}
	// NoopStore drops every write; the fresh set must still come back.
	svc := NewLaunchService(api, cache.NewNoopStore(), time.Hour)

	launches, err := svc.ListLaunches(context.Background(), false)
	if err != nil {
		t.Fatalf("ListLaunches failed: %v", err)
	}
	if len(launches) != 4 {
		t.Fatalf("expected the fetched set regardless of cache write outcome, got %d launches", len(launches))
	}
}

func TestGetLaunchByID(t *testing.T) {
	api := &fakeAPI{launches: testLaunches(t)}
	svc := newTestService(t, api)
	ctx := context.Background()

	launch, err := svc.GetLaunchByID(ctx, "l2")
	if err != nil {
		t.Fatalf("GetLaunchByID failed: %v", err)
	}
	if launch == nil || launch.Name != "Beta" {
		t.Fatalf("expected launch l2 (Beta), got %+v", launch)
	}
}

func TestGetLaunchByIDNotFoundIsNotAnError(t *testing.T) {
	api := &fakeAPI{launches: testLaunches(t)}
	svc := newTestService(t, api)

	launch, err := svc.GetLaunchByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("expected absence to be a normal outcome, got error: %v", err)
	}
	if launch != nil {
		t.Fatalf("expected nil for an unknown ID, got %+v", launch)
	}
}

func TestRocketNamesAreCached(t *testing.T) {
	api := &fakeAPI{rockets: []models.Rocket{{ID: "r1", Name: "Falcon 9"}}}
	svc := newTestService(t, api)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		names, err := svc.RocketNames(ctx)
		if err != nil {
			t.Fatalf("RocketNames failed: %v", err)
		}
		if names["r1"] != "Falcon 9" {
			t.Fatalf("unexpected name map: %v", names)
		}
	}
	if api.rocketCalls != 1 {
		t.Fatalf("expected the rocket catalog to be fetched once, got %d", api.rocketCalls)
	}
}

func TestResolveFilterNamesCaseInsensitiveExactMatch(t *testing.T) {
	api := &fakeAPI{
		rockets: []models.Rocket{
			{ID: "r1", Name: "Falcon 9"},
			{ID: "r2", Name: "Falcon Heavy"},
		},
		launchpads: []models.Launchpad{{ID: "p1", Name: "VAFB SLC 4E"}},
	}
	svc := newTestService(t, api)

	filter := &models.LaunchFilter{RocketName: "falcon 9", LaunchpadName: "vafb slc 4e"}
	if err := svc.ResolveFilterNames(context.Background(), filter); err != nil {
		t.Fatalf("ResolveFilterNames failed: %v", err)
	}

	if !filter.RocketIDs["r1"] || filter.RocketIDs["r2"] {
		t.Errorf("expected exact case-insensitive rocket match, got %v", filter.RocketIDs)
	}
	if !filter.LaunchpadIDs["p1"] {
		t.Errorf("expected launchpad match, got %v", filter.LaunchpadIDs)
	}
}

func TestResolveFilterNamesSkipsUnsetCriteria(t *testing.T) {
	api := &fakeAPI{}
	svc := newTestService(t, api)

	if err := svc.ResolveFilterNames(context.Background(), &models.LaunchFilter{}); err != nil {
		t.Fatalf("ResolveFilterNames failed: %v", err)
	}
	if api.rocketCalls != 0 || api.launchpadCalls != 0 {
		t.Errorf("expected no catalog fetches for an empty filter, got rockets=%d launchpads=%d",
			api.rocketCalls, api.launchpadCalls)
	}
}

func TestRefreshCacheFetchesOnce(t *testing.T) {
	api := &fakeAPI{launches: testLaunches(t)}
	svc := newTestService(t, api)

	count, err := svc.RefreshCache(context.Background())
	if err != nil {
		t.Fatalf("RefreshCache failed: %v", err)
	}
	if count != 4 || api.launchCalls != 1 {
		t.Fatalf("expected one fetch of 4 launches, got count=%d calls=%d", count, api.launchCalls)
	}

	// The refreshed entry serves subsequent reads.
	if _, err := svc.ListLaunches(context.Background(), false); err != nil {
		t.Fatalf("ListLaunches after refresh failed: %v", err)
	}
	if api.launchCalls != 1 {
		t.Fatalf("expected refresh to populate the cache, got %d fetches", api.launchCalls)
	}
}

func TestClearCacheForcesRefetch(t *testing.T) {
	api := &fakeAPI{launches: testLaunches(t)}
	svc := newTestService(t, api)
	ctx := context.Background()

	if _, err := svc.ListLaunches(ctx, false); err != nil {
		t.Fatalf("ListLaunches failed: %v", err)
	}
	svc.ClearCache()
	if _, err := svc.ListLaunches(ctx, false); err != nil {
		t.Fatalf("ListLaunches after clear failed: %v", err)
	}
	if api.launchCalls != 2 {
		t.Fatalf("expected a refetch after ClearCache, got %d calls", api.launchCalls)
	}
}
