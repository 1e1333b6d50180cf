package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
	"github.com/Green-Future-Society/incident-console/internal/core/ports"
)

// minQueryLength is the shortest place-name query worth a network call;
// anything shorter returns an empty result set immediately.
const minQueryLength = 2

// geocodingAPI talks to the third-party open-meteo geocoding provider. It
// deliberately uses its own bare transport rather than the pipeline client:
// the provider must never see our bearer token, and its failures are the
// caller's to surface, not global toasts.
type geocodingAPI struct {
	baseURL string
	http    *http.Client
}

// NewGeocodingAPI returns a ports.GeocodingAPI for the given provider base
// URL (e.g. https://geocoding-api.open-meteo.com/v1).
func NewGeocodingAPI(baseURL string, timeout time.Duration) ports.GeocodingAPI {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &geocodingAPI{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type geocodingEnvelope struct {
	Results []domain.GeocodingResult `json:"results"`
}

func (g *geocodingAPI) Search(ctx context.Context, query string) ([]domain.GeocodingResult, error) {
	if len([]rune(query)) < minQueryLength {
		return []domain.GeocodingResult{}, nil
	}

	params := url.Values{
		"name":     {query},
		"count":    {"5"},
		"language": {"en"},
		"format":   {"json"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding: build request: %w", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding: unexpected status %d", resp.StatusCode)
	}

	var env geocodingEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("geocoding: decode response: %w", err)
	}
	if env.Results == nil {
		return []domain.GeocodingResult{}, nil
	}
	return env.Results, nil
}

// Coordinates resolves a place name to the position of its best match. A
// search without hits is not an error: the caller gets (nil, nil).
func (g *geocodingAPI) Coordinates(ctx context.Context, name string) (*domain.Coordinates, error) {
	results, err := g.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &domain.Coordinates{
		Latitude:  results[0].Latitude,
		Longitude: results[0].Longitude,
	}, nil
}
