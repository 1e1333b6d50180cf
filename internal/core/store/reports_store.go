package store

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
	"github.com/Green-Future-Society/incident-console/internal/core/ports"
)

// ReportsStoreOptions collects the reports store's collaborators.
type ReportsStoreOptions struct {
	API      ports.ReportsAPI
	Notifier ports.Notifier
	Logger   zerolog.Logger

	// Now supplies the clock for the this-month aggregate. Defaults to
	// time.Now; injected by tests.
	Now func() time.Time
}

// ReportsStore caches the fetched report collection and derives filtered and
// aggregated views from it. The collection is a cache, not the source of
// truth: mutating actions splice the server's echo into the cache rather
// than re-fetching.
type ReportsStore struct {
	api      ports.ReportsAPI
	notifier ports.Notifier
	log      zerolog.Logger
	now      func() time.Time

	mu      sync.RWMutex
	reports []domain.Report
	current *domain.Report
	filters domain.ReportFilters
	loading bool
}

// NewReportsStore builds the reports store with an empty cache.
func NewReportsStore(opts ReportsStoreOptions) *ReportsStore {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &ReportsStore{
		api:      opts.API,
		notifier: opts.Notifier,
		log:      opts.Logger,
		now:      now,
	}
}

// ── Actions ───────────────────────────────────────────────────────────────────

// Fetch replaces the cached collection with the backend's current state.
func (s *ReportsStore) Fetch(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	reports, err := s.api.List(ctx)
	if err != nil {
		s.notifier.Notify(domain.NotifyError, "Failed to fetch reports")
		return err
	}

	s.mu.Lock()
	s.reports = reports
	s.mu.Unlock()
	return nil
}

// FetchByID loads one report and remembers it as the current report.
func (s *ReportsStore) FetchByID(ctx context.Context, id int) (*domain.Report, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	report, err := s.api.Get(ctx, id)
	if err != nil {
		s.notifier.Notify(domain.NotifyError, "Failed to fetch report")
		return nil, err
	}

	s.mu.Lock()
	s.current = report
	s.mu.Unlock()
	return report, nil
}

// Create submits a new report and, on success, places the server's echo at
// the front of the cache. No reconciliation happens if the server-side
// representation later diverges.
func (s *ReportsStore) Create(ctx context.Context, input domain.ReportInput) (*domain.Report, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	created, err := s.api.Create(ctx, input)
	if err != nil {
		s.notifier.Notify(domain.NotifyError, "Failed to create report")
		return nil, err
	}

	s.mu.Lock()
	s.reports = append([]domain.Report{*created}, s.reports...)
	s.mu.Unlock()

	s.notifier.Notify(domain.NotifySuccess, "Report created successfully")
	return created, nil
}

// Update submits changes to an existing report and splices the server's echo
// over the cached entry with the same id. The current report is replaced too
// when it is the one updated.
func (s *ReportsStore) Update(ctx context.Context, id int, input domain.ReportInput) (*domain.Report, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.api.Update(ctx, id, input)
	if err != nil {
		s.notifier.Notify(domain.NotifyError, "Failed to update report")
		return nil, err
	}

	s.mu.Lock()
	for i := range s.reports {
		if s.reports[i].ID != nil && *s.reports[i].ID == id {
			s.reports[i] = *updated
			break
		}
	}
	if s.current != nil && s.current.ID != nil && *s.current.ID == id {
		s.current = updated
	}
	s.mu.Unlock()

	s.notifier.Notify(domain.NotifySuccess, "Report updated successfully")
	return updated, nil
}

// Delete removes a report on the backend and drops it from the cache.
func (s *ReportsStore) Delete(ctx context.Context, id int) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.api.Delete(ctx, id); err != nil {
		s.notifier.Notify(domain.NotifyError, "Failed to delete report")
		return err
	}

	s.mu.Lock()
	for i := range s.reports {
		if s.reports[i].ID != nil && *s.reports[i].ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			break
		}
	}
	if s.current != nil && s.current.ID != nil && *s.current.ID == id {
		s.current = nil
	}
	s.mu.Unlock()

	s.notifier.Notify(domain.NotifySuccess, "Report deleted")
	return nil
}

// SetFilters merges the given filters over the current filter spec. Empty
// fields in the argument are treated as "leave unchanged"; use ClearFilters
// to reset.
func (s *ReportsStore) SetFilters(f domain.ReportFilters) {
	s.mu.Lock()
	if f.IncidentType != "" {
		s.filters.IncidentType = f.IncidentType
	}
	if f.Search != "" {
		s.filters.Search = f.Search
	}
	s.mu.Unlock()
}

// ClearFilters resets the filter spec.
func (s *ReportsStore) ClearFilters() {
	s.mu.Lock()
	s.filters = domain.ReportFilters{}
	s.mu.Unlock()
}

// ── Derived views (recomputed on every read) ──────────────────────────────────

// Reports returns a copy of the full cached collection.
func (s *ReportsStore) Reports() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// Current returns the most recently fetched single report, or nil.
func (s *ReportsStore) Current() *domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Filters returns the active filter spec.
func (s *ReportsStore) Filters() domain.ReportFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Loading reports whether a store action is in flight. Coarse like the auth
// store's flag: overlapping calls share it.
func (s *ReportsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// FilteredReports narrows the cache by the active filter spec: exact match
// on incident type AND case-insensitive substring match of the search text
// against location, description, or contact. Always a subset of Reports.
func (s *ReportsStore) FilteredReports() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Report, 0, len(s.reports))
	search := strings.ToLower(s.filters.Search)
	for _, r := range s.reports {
		if s.filters.IncidentType != "" && r.IncidentType != s.filters.IncidentType {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// IncidentTypes returns the distinct non-empty incident types present, in
// order of first occurrence.
func (s *ReportsStore) IncidentTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.reports))
	types := make([]string, 0, len(s.reports))
	for _, r := range s.reports {
		if r.IncidentType == "" {
			continue
		}
		if _, ok := seen[r.IncidentType]; ok {
			continue
		}
		seen[r.IncidentType] = struct{}{}
		types = append(types, r.IncidentType)
	}
	return types
}

// DashboardStats aggregates the full cache: totals, credibility buckets, the
// current-calendar-month count (local clock), and the mean credibility score
// rounded to two decimals (0 for an empty cache).
func (s *ReportsStore) DashboardStats() domain.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.DashboardStats{TotalReports: len(s.reports)}
	if len(s.reports) == 0 {
		return stats
	}

	now := s.now()
	var sum float64
	for _, r := range s.reports {
		sum += r.CredibilityScore
		if r.IsCredible() {
			stats.ActiveIncidents++
		}
		if r.IsLowConfidence() {
			stats.ResolvedIncidents++
		}
		if r.CreatedOn != nil {
			created := r.CreatedOn.In(now.Location())
			if created.Month() == now.Month() && created.Year() == now.Year() {
				stats.ReportsThisMonth++
			}
		}
	}
	stats.AvgCredibilityScore = math.Round(sum/float64(len(s.reports))*100) / 100
	return stats
}

func (s *ReportsStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func matchesSearch(r domain.Report, search string) bool {
	return strings.Contains(strings.ToLower(r.Location), search) ||
		strings.Contains(strings.ToLower(r.Description), search) ||
		strings.Contains(strings.ToLower(r.Contact), search)
}
