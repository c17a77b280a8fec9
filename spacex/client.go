// spacex/client.go
package spacex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gewnthar/launchtrack/models"
)

// APIError reports that the SpaceX API could not be reached or returned an
// unusable response. Callers map it to a "service temporarily unavailable"
// condition; the request may be retried later.
type APIError struct {
	Endpoint string
	Err      error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("SpaceX API request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// Client fetches launch, rocket, and launchpad data from the SpaceX v4 API.
// It performs no caching and no retries; a failed fetch surfaces immediately.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the given base URL (e.g.
// "https://api.spacexdata.com/v4") with the configured fetch timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetAllLaunches fetches every launch known to the API.
func (c *Client) GetAllLaunches(ctx context.Context) ([]models.Launch, error) {
	var launches []models.Launch
	if err := c.getJSON(ctx, "launches", &launches); err != nil {
		return nil, err
	}
	return launches, nil
}

// GetAllRockets fetches the rocket catalog.
func (c *Client) GetAllRockets(ctx context.Context) ([]models.Rocket, error) {
	var rockets []models.Rocket
	if err := c.getJSON(ctx, "rockets", &rockets); err != nil {
		return nil, err
	}
	return rockets, nil
}

// GetAllLaunchpads fetches the launchpad catalog.
func (c *Client) GetAllLaunchpads(ctx context.Context) ([]models.Launchpad, error) {
	var launchpads []models.Launchpad
	if err := c.getJSON(ctx, "launchpads", &launchpads); err != nil {
		return nil, err
	}
	return launchpads, nil
}

// getJSON performs a GET against baseURL/endpoint and decodes the body into
// out. Network errors, non-200 statuses, and malformed bodies all wrap into
// an *APIError.
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	url := c.baseURL + "/" + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &APIError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: endpoint, Err: fmt.Errorf("received status code %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Endpoint: endpoint, Err: fmt.Errorf("failed to decode response body: %w", err)}
	}
	return nil
}
