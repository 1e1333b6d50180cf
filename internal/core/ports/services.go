package ports

import (
	"context"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
)

// AuthAPI exposes the authentication and registration resources. Every call
// is one HTTP round trip through the client pipeline; no caching, no retries.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.LoginRequest) (*domain.LoginResponse, error)
	Register(ctx context.Context, data domain.RegistrationRequest) (*domain.RESTResponse, error)
	ConfirmEmail(ctx context.Context, token string) (*domain.RESTResponse, error)
	ResetPassword(ctx context.Context, msisdn string) (*domain.RESTResponse, error)
	ResendOTP(ctx context.Context, msisdn string) (*domain.RESTResponse, error)
	SetNewPassword(ctx context.Context, token, password string) (*domain.RESTResponse, error)
}

// ReportsAPI exposes the incident-report resource.
type ReportsAPI interface {
	List(ctx context.Context) ([]domain.Report, error)
	Get(ctx context.Context, id int) (*domain.Report, error)
	Create(ctx context.Context, input domain.ReportInput) (*domain.Report, error)
	Update(ctx context.Context, id int, input domain.ReportInput) (*domain.Report, error)
	Delete(ctx context.Context, id int) error
}

// WeatherAPI exposes historical weather aggregations for a location.
type WeatherAPI interface {
	// Temperature returns the temperature series; years <= 0 defaults to 5.
	Temperature(ctx context.Context, lat, lng float64, years int) (*domain.WeatherSeries, error)
	// Precipitation returns the precipitation series; years <= 0 defaults to 10.
	Precipitation(ctx context.Context, lat, lng float64, years int) (*domain.WeatherSeries, error)
}

// GeocodingAPI resolves free-text place names against the third-party
// geocoding provider.
type GeocodingAPI interface {
	// Search returns up to five candidates. Queries shorter than two
	// characters return an empty slice without a network call.
	Search(ctx context.Context, query string) ([]domain.GeocodingResult, error)
	// Coordinates returns the first search hit's position, or nil (with a
	// nil error) when the search yields nothing.
	Coordinates(ctx context.Context, name string) (*domain.Coordinates, error)
}

// AnalyticsAPI exposes the separately hosted analytics backend.
type AnalyticsAPI interface {
	DashboardStats(ctx context.Context) (*domain.AnalyticsDashboard, error)
	MapData(ctx context.Context) ([]domain.MapDataPoint, error)
}
