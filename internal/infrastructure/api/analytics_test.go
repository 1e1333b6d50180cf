package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnalyticsDashboardStats_AppliesExtraHeader(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Bypass-Tunnel-Reminder")
		w.Write([]byte(`{"summary":{"total_reports":12,"verified_reports":4},"crime_stats":{"Theft":7},"hotspots":{"CBD":5}}`))
	}))
	defer srv.Close()

	a := NewAnalyticsAPI(srv.URL, "Bypass-Tunnel-Reminder: true", 0)
	stats, err := a.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHeader != "true" {
		t.Fatalf("extra header = %q, want %q", gotHeader, "true")
	}
	if stats.Summary.TotalReports != 12 || stats.Summary.VerifiedReports != 4 {
		t.Fatalf("summary = %+v", stats.Summary)
	}
	if stats.CrimeStats["Theft"] != 7 {
		t.Fatalf("crime stats = %+v", stats.CrimeStats)
	}
}

func TestAnalyticsMapData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":-1.28,"lon":36.81,"desc":"Theft near market"}]`))
	}))
	defer srv.Close()

	a := NewAnalyticsAPI(srv.URL, "", 0)
	points, err := a.MapData(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0].Desc != "Theft near market" {
		t.Fatalf("points = %+v", points)
	}
}

func TestSplitHeader(t *testing.T) {
	cases := []struct {
		in          string
		name, value string
	}{
		{"Bypass-Tunnel-Reminder: true", "Bypass-Tunnel-Reminder", "true"},
		{"X-Key:abc", "X-Key", "abc"},
		{"", "", ""},
		{"no-colon-here", "", ""},
	}
	for _, tc := range cases {
		name, value := splitHeader(tc.in)
		if name != tc.name || value != tc.value {
			t.Fatalf("splitHeader(%q) = %q, %q", tc.in, name, value)
		}
	}
}
