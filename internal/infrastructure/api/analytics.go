package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
	"github.com/Green-Future-Society/incident-console/internal/core/ports"
)

// analyticsAPI talks to the separately hosted analytics backend. There is
// exactly one transport configuration: base URL plus at most one deployment
// specific header (e.g. a tunnel bypass header), applied to every call.
type analyticsAPI struct {
	baseURL     string
	headerName  string
	headerValue string
	http        *http.Client
}

// NewAnalyticsAPI returns a ports.AnalyticsAPI for the given base URL.
// extraHeader is an optional "Name: Value" pair; empty means none.
func NewAnalyticsAPI(baseURL, extraHeader string, timeout time.Duration) ports.AnalyticsAPI {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	name, value := splitHeader(extraHeader)
	return &analyticsAPI{
		baseURL:     strings.TrimRight(baseURL, "/"),
		headerName:  name,
		headerValue: value,
		http:        &http.Client{Timeout: timeout},
	}
}

func (a *analyticsAPI) DashboardStats(ctx context.Context) (*domain.AnalyticsDashboard, error) {
	var out domain.AnalyticsDashboard
	if err := a.get(ctx, "/dashboard-stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *analyticsAPI) MapData(ctx context.Context) ([]domain.MapDataPoint, error) {
	var out []domain.MapDataPoint
	if err := a.get(ctx, "/map-data", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *analyticsAPI) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("analytics: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if a.headerName != "" {
		req.Header.Set(a.headerName, a.headerValue)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("analytics: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("analytics: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("analytics: decode response: %w", err)
	}
	return nil
}

// splitHeader parses "Name: Value"; malformed input yields no header.
func splitHeader(h string) (name, value string) {
	name, value, ok := strings.Cut(h, ":")
	if !ok {
		return "", ""
	}
	return strings.TrimSpace(name), strings.TrimSpace(value)
}
