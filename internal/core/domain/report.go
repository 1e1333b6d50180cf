package domain

import "time"

// Credibility thresholds applied across dashboard aggregation. Scores are
// confidence values in [0,1].
const (
	CredibleScoreMin      = 0.7
	LowConfidenceScoreMax = 0.3
)

// Report is a single incident report. Pointer fields are server-assigned or
// genuinely optional; a nil pointer means the backend never sent the value.
type Report struct {
	ID               *int       `json:"id,omitempty"`
	Contact          string     `json:"contact"`
	Location         string     `json:"location"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	Description      string     `json:"description"`
	OriginalMessage  string     `json:"originalMessage"`
	IncidentType     string     `json:"incidentType"`
	CredibilityScore float64    `json:"credibilityScore"`
	CreatedOn        *time.Time `json:"createdOn,omitempty"`
	UpdatedOn        *time.Time `json:"updatedOn,omitempty"`
	UpdatedBy        string     `json:"updatedBy,omitempty"`
}

// IsCredible reports whether the score clears the active-incident threshold.
func (r Report) IsCredible() bool { return r.CredibilityScore >= CredibleScoreMin }

// IsLowConfidence reports whether the score falls below the noise threshold.
func (r Report) IsLowConfidence() bool { return r.CredibilityScore < LowConfidenceScoreMax }

// ReportInput is the client-supplied portion of a report, used for create and
// update calls. Server-assigned fields (id, timestamps) are absent.
type ReportInput struct {
	Contact          string   `json:"contact"          validate:"required"`
	Location         string   `json:"location"         validate:"required"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Description      string   `json:"description"      validate:"required"`
	OriginalMessage  string   `json:"originalMessage"`
	IncidentType     string   `json:"incidentType"     validate:"required"`
	CredibilityScore float64  `json:"credibilityScore" validate:"gte=0,lte=1"`
}

// ReportFilters narrows the cached report collection. Zero values disable the
// corresponding filter; both filters are ANDed when set.
type ReportFilters struct {
	IncidentType string
	Search       string
}

// DashboardStats is the aggregate derived from the cached report collection.
type DashboardStats struct {
	TotalReports        int     `json:"totalReports"`
	TotalUsers          int     `json:"totalUsers"`
	ActiveIncidents     int     `json:"activeIncidents"`
	ResolvedIncidents   int     `json:"resolvedIncidents"`
	ReportsThisMonth    int     `json:"reportsThisMonth"`
	AvgCredibilityScore float64 `json:"avgCredibilityScore"`
}
