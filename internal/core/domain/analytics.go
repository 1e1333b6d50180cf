package domain

// GeocodingResult is one candidate place returned by the geocoding provider.
type GeocodingResult struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	Admin1    string  `json:"admin1,omitempty"`
}

// Coordinates is a resolved geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WeatherSeries is a historical weather aggregation for one location. The
// backend shapes the series; the client passes it through for rendering.
type WeatherSeries struct {
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Years     int                `json:"years"`
	Unit      string             `json:"unit,omitempty"`
	Data      []WeatherDataPoint `json:"data"`
}

// WeatherDataPoint is one sample in a weather series.
type WeatherDataPoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// AnalyticsSummary is the roll-up section of the analytics dashboard payload.
type AnalyticsSummary struct {
	TotalReports    int `json:"total_reports"`
	VerifiedReports int `json:"verified_reports"`
}

// AnalyticsRecentReport is a trimmed report row embedded in the analytics
// dashboard payload.
type AnalyticsRecentReport struct {
	ID               int     `json:"id"`
	IncidentType     string  `json:"incidentType"`
	Location         string  `json:"location"`
	Description      string  `json:"description"`
	CreatedOn        string  `json:"createdOn"`
	CredibilityScore float64 `json:"credibilityScore"`
}

// AnalyticsDashboard is the /dashboard-stats payload of the analytics backend.
type AnalyticsDashboard struct {
	Summary       AnalyticsSummary        `json:"summary"`
	Hotspots      map[string]int          `json:"hotspots"`
	CrimeStats    map[string]int          `json:"crime_stats"`
	RecentReports []AnalyticsRecentReport `json:"recent_reports"`
}

// MapDataPoint is one plottable incident from the analytics /map-data feed.
type MapDataPoint struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Desc string  `json:"desc"`
}
