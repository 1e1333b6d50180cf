package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
)

type fakeReportsAPI struct {
	listFn   func(ctx context.Context) ([]domain.Report, error)
	getFn    func(ctx context.Context, id int) (*domain.Report, error)
	createFn func(ctx context.Context, input domain.ReportInput) (*domain.Report, error)
	updateFn func(ctx context.Context, id int, input domain.ReportInput) (*domain.Report, error)
	deleteFn func(ctx context.Context, id int) error
}

func (f *fakeReportsAPI) List(ctx context.Context) ([]domain.Report, error) {
	return f.listFn(ctx)
}

func (f *fakeReportsAPI) Get(ctx context.Context, id int) (*domain.Report, error) {
	return f.getFn(ctx, id)
}

func (f *fakeReportsAPI) Create(ctx context.Context, input domain.ReportInput) (*domain.Report, error) {
	return f.createFn(ctx, input)
}

func (f *fakeReportsAPI) Update(ctx context.Context, id int, input domain.ReportInput) (*domain.Report, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeReportsAPI) Delete(ctx context.Context, id int) error {
	return f.deleteFn(ctx, id)
}

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func report(id int, incidentType, location string, score float64) domain.Report {
	return domain.Report{
		ID:               intPtr(id),
		IncidentType:     incidentType,
		Location:         location,
		Description:      "desc for " + location,
		CredibilityScore: score,
	}
}

func newReportsStoreWith(api *fakeReportsAPI, notifier *recordingNotifier, now func() time.Time) *ReportsStore {
	return NewReportsStore(ReportsStoreOptions{
		API:      api,
		Notifier: notifier,
		Logger:   zerolog.Nop(),
		Now:      now,
	})
}

func seeded(t *testing.T, reports []domain.Report, now func() time.Time) (*ReportsStore, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	api := &fakeReportsAPI{
		listFn: func(context.Context) ([]domain.Report, error) { return reports, nil },
	}
	s := newReportsStoreWith(api, notifier, now)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}
	return s, notifier
}

func TestFetch_ReplacesCache(t *testing.T) {
	s, _ := seeded(t, []domain.Report{
		report(1, "Theft", "CBD", 0.9),
		report(2, "Assault", "Westlands", 0.4),
	}, nil)

	if got := len(s.Reports()); got != 2 {
		t.Fatalf("cache size = %d", got)
	}
	if s.Loading() {
		t.Fatal("loading flag must reset after settle")
	}
}

func TestFetch_FailureNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	api := &fakeReportsAPI{
		listFn: func(context.Context) ([]domain.Report, error) { return nil, errors.New("boom") },
	}
	s := newReportsStoreWith(api, notifier, nil)

	if err := s.Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if _, msg := notifier.last(); msg != "Failed to fetch reports" {
		t.Fatalf("notification = %q", msg)
	}
	if got := len(s.Reports()); got != 0 {
		t.Fatalf("cache must stay empty on failure, got %d", got)
	}
}

func TestFilteredReports_TypeAndSearchAreConjunctive(t *testing.T) {
	s, _ := seeded(t, []domain.Report{
		report(1, "Theft", "CBD Market", 0.9),
		report(2, "Theft", "Westlands", 0.4),
		report(3, "Assault", "CBD Station", 0.6),
	}, nil)

	s.SetFilters(domain.ReportFilters{IncidentType: "Theft", Search: "cbd"})
	got := s.FilteredReports()
	if len(got) != 1 || *got[0].ID != 1 {
		t.Fatalf("filtered = %+v", got)
	}
}

func TestFilteredReports_SearchMatchesContact(t *testing.T) {
	r := report(1, "Theft", "CBD", 0.9)
	r.Contact = "Jane Wanjiru"
	s, _ := seeded(t, []domain.Report{r, report(2, "Theft", "Westlands", 0.4)}, nil)

	s.SetFilters(domain.ReportFilters{Search: "wanjiru"})
	got := s.FilteredReports()
	if len(got) != 1 || *got[0].ID != 1 {
		t.Fatalf("filtered = %+v", got)
	}
}

func TestFilteredReports_NoFiltersReturnsAll(t *testing.T) {
	reports := []domain.Report{
		report(1, "Theft", "CBD", 0.9),
		report(2, "Assault", "Westlands", 0.4),
	}
	s, _ := seeded(t, reports, nil)

	if got := s.FilteredReports(); len(got) != len(reports) {
		t.Fatalf("filtered = %d, want %d", len(got), len(reports))
	}
	// Reading a derived view never mutates state: same answer twice.
	if got := s.FilteredReports(); len(got) != len(reports) {
		t.Fatalf("second read = %d, want %d", len(got), len(reports))
	}
}

func TestSetFilters_MergesNonEmptyFields(t *testing.T) {
	s, _ := seeded(t, nil, nil)

	s.SetFilters(domain.ReportFilters{IncidentType: "Theft"})
	s.SetFilters(domain.ReportFilters{Search: "cbd"})
	f := s.Filters()
	if f.IncidentType != "Theft" || f.Search != "cbd" {
		t.Fatalf("filters = %+v", f)
	}

	s.ClearFilters()
	if f := s.Filters(); f.IncidentType != "" || f.Search != "" {
		t.Fatalf("filters after clear = %+v", f)
	}
}

func TestIncidentTypes_DistinctFirstOccurrenceOrder(t *testing.T) {
	s, _ := seeded(t, []domain.Report{
		report(1, "Theft", "CBD", 0.9),
		report(2, "Assault", "Westlands", 0.4),
		report(3, "Theft", "Karen", 0.6),
		report(4, "", "Kilimani", 0.5),
		report(5, "Vandalism", "CBD", 0.2),
	}, nil)

	got := s.IncidentTypes()
	want := []string{"Theft", "Assault", "Vandalism"}
	if len(got) != len(want) {
		t.Fatalf("types = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("types = %v, want %v", got, want)
		}
	}
}

func TestDashboardStats_EmptyCache(t *testing.T) {
	s, _ := seeded(t, nil, nil)

	stats := s.DashboardStats()
	if stats.TotalReports != 0 || stats.AvgCredibilityScore != 0 {
		t.Fatalf("stats = %+v, want all zero", stats)
	}
}

func TestDashboardStats_Aggregates(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	inMonth := report(1, "Theft", "CBD", 0.8)
	inMonth.CreatedOn = timePtr(time.Date(2026, time.August, 2, 9, 0, 0, 0, time.UTC))
	lastMonth := report(2, "Assault", "Westlands", 0.25)
	lastMonth.CreatedOn = timePtr(time.Date(2026, time.July, 30, 9, 0, 0, 0, time.UTC))
	lastYear := report(3, "Theft", "Karen", 0.7)
	lastYear.CreatedOn = timePtr(time.Date(2025, time.August, 2, 9, 0, 0, 0, time.UTC))
	noDate := report(4, "Vandalism", "Kilimani", 0.3)

	s, _ := seeded(t, []domain.Report{inMonth, lastMonth, lastYear, noDate},
		func() time.Time { return now })

	stats := s.DashboardStats()
	if stats.TotalReports != 4 {
		t.Fatalf("total = %d", stats.TotalReports)
	}
	// Credible: >= 0.7 (0.8 and 0.7). Low confidence: < 0.3 (0.25 only;
	// 0.3 sits exactly on the boundary and does not count).
	if stats.ActiveIncidents != 2 {
		t.Fatalf("active = %d", stats.ActiveIncidents)
	}
	if stats.ResolvedIncidents != 1 {
		t.Fatalf("resolved = %d", stats.ResolvedIncidents)
	}
	// Same calendar month AND year only.
	if stats.ReportsThisMonth != 1 {
		t.Fatalf("this month = %d", stats.ReportsThisMonth)
	}
	// (0.8+0.25+0.7+0.3)/4 = 0.5125, rounded to 0.51.
	if stats.AvgCredibilityScore != 0.51 {
		t.Fatalf("avg = %v", stats.AvgCredibilityScore)
	}
}

func TestCreate_PrependsServerEcho(t *testing.T) {
	notifier := &recordingNotifier{}
	echo := report(9, "Vandalism", "Karen", 0.5)
	api := &fakeReportsAPI{
		listFn: func(context.Context) ([]domain.Report, error) {
			return []domain.Report{report(1, "Theft", "CBD", 0.9)}, nil
		},
		createFn: func(_ context.Context, input domain.ReportInput) (*domain.Report, error) {
			if input.IncidentType != "Vandalism" {
				t.Fatalf("input type = %q", input.IncidentType)
			}
			return &echo, nil
		},
	}
	s := newReportsStoreWith(api, notifier, nil)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}

	created, err := s.Create(context.Background(), domain.ReportInput{
		IncidentType: "Vandalism", Location: "Karen", Description: "broken lights",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *created.ID != 9 {
		t.Fatalf("created id = %d", *created.ID)
	}

	cache := s.Reports()
	if len(cache) != 2 || *cache[0].ID != 9 || *cache[1].ID != 1 {
		t.Fatalf("cache order = %+v", cache)
	}
	if kind, msg := notifier.last(); kind != domain.NotifySuccess || msg != "Report created successfully" {
		t.Fatalf("notification = %q %q", kind, msg)
	}
}

func TestUpdate_SplicesById(t *testing.T) {
	notifier := &recordingNotifier{}
	updated := report(2, "Assault", "Westlands Mall", 0.6)
	api := &fakeReportsAPI{
		listFn: func(context.Context) ([]domain.Report, error) {
			return []domain.Report{
				report(1, "Theft", "CBD", 0.9),
				report(2, "Assault", "Westlands", 0.4),
			}, nil
		},
		getFn: func(_ context.Context, id int) (*domain.Report, error) {
			r := report(id, "Assault", "Westlands", 0.4)
			return &r, nil
		},
		updateFn: func(_ context.Context, id int, _ domain.ReportInput) (*domain.Report, error) {
			if id != 2 {
				t.Fatalf("update id = %d", id)
			}
			return &updated, nil
		},
	}
	s := newReportsStoreWith(api, notifier, nil)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}
	if _, err := s.FetchByID(context.Background(), 2); err != nil {
		t.Fatalf("fetch by id: %v", err)
	}

	if _, err := s.Update(context.Background(), 2, domain.ReportInput{Location: "Westlands Mall"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cache := s.Reports()
	if len(cache) != 2 {
		t.Fatalf("cache size = %d", len(cache))
	}
	if cache[1].Location != "Westlands Mall" {
		t.Fatalf("cache[1] = %+v, want spliced echo", cache[1])
	}
	if cur := s.Current(); cur == nil || cur.Location != "Westlands Mall" {
		t.Fatalf("current = %+v, want replaced", cur)
	}
	if _, msg := notifier.last(); msg != "Report updated successfully" {
		t.Fatalf("notification = %q", msg)
	}
}

func TestDelete_RemovesFromCache(t *testing.T) {
	notifier := &recordingNotifier{}
	api := &fakeReportsAPI{
		listFn: func(context.Context) ([]domain.Report, error) {
			return []domain.Report{
				report(1, "Theft", "CBD", 0.9),
				report(2, "Assault", "Westlands", 0.4),
			}, nil
		},
		deleteFn: func(_ context.Context, id int) error {
			if id != 1 {
				t.Fatalf("delete id = %d", id)
			}
			return nil
		},
	}
	s := newReportsStoreWith(api, notifier, nil)
	if err := s.Fetch(context.Background()); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}

	if err := s.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache := s.Reports()
	if len(cache) != 1 || *cache[0].ID != 2 {
		t.Fatalf("cache = %+v", cache)
	}
	if _, msg := notifier.last(); msg != "Report deleted" {
		t.Fatalf("notification = %q", msg)
	}
}
