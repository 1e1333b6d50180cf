package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
	"github.com/Green-Future-Society/incident-console/internal/core/ports"
)

// Default lookback windows applied when the caller does not pick one.
const (
	defaultTemperatureYears   = 5
	defaultPrecipitationYears = 10
)

// weatherAPI is the façade over the backend's historical weather resource.
type weatherAPI struct {
	client *Client
}

// NewWeatherAPI returns a ports.WeatherAPI backed by the pipeline client.
func NewWeatherAPI(client *Client) ports.WeatherAPI {
	return &weatherAPI{client: client}
}

func (w *weatherAPI) Temperature(ctx context.Context, lat, lng float64, years int) (*domain.WeatherSeries, error) {
	if years <= 0 {
		years = defaultTemperatureYears
	}
	return w.series(ctx, "/weather/temperature", lat, lng, years)
}

func (w *weatherAPI) Precipitation(ctx context.Context, lat, lng float64, years int) (*domain.WeatherSeries, error) {
	if years <= 0 {
		years = defaultPrecipitationYears
	}
	return w.series(ctx, "/weather/precipitation", lat, lng, years)
}

func (w *weatherAPI) series(ctx context.Context, path string, lat, lng float64, years int) (*domain.WeatherSeries, error) {
	query := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lng":   {strconv.FormatFloat(lng, 'f', -1, 64)},
		"years": {strconv.Itoa(years)},
	}
	var out domain.WeatherSeries
	if err := w.client.Get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
