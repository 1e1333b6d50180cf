package api

import (
	"context"
	"fmt"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
	"github.com/Green-Future-Society/incident-console/internal/core/ports"
)

// reportsAPI is the façade over the incident-report resource.
type reportsAPI struct {
	client *Client
}

// NewReportsAPI returns a ports.ReportsAPI backed by the pipeline client.
func NewReportsAPI(client *Client) ports.ReportsAPI {
	return &reportsAPI{client: client}
}

func (r *reportsAPI) List(ctx context.Context) ([]domain.Report, error) {
	var out []domain.Report
	if err := r.client.Get(ctx, "/reports", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reportsAPI) Get(ctx context.Context, id int) (*domain.Report, error) {
	var out domain.Report
	if err := r.client.Get(ctx, fmt.Sprintf("/reports/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reportsAPI) Create(ctx context.Context, input domain.ReportInput) (*domain.Report, error) {
	if err := r.client.ValidateRequest(input); err != nil {
		return nil, err
	}
	var out domain.Report
	if err := r.client.Post(ctx, "/reports", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reportsAPI) Update(ctx context.Context, id int, input domain.ReportInput) (*domain.Report, error) {
	if err := r.client.ValidateRequest(input); err != nil {
		return nil, err
	}
	var out domain.Report
	if err := r.client.Put(ctx, fmt.Sprintf("/reports/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reportsAPI) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/reports/%d", id))
}
