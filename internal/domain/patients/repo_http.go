package patients

import (
	"context"
	"fmt"

	"github.com/medgate/medgate/internal/platform/gateway"
)

// HTTPRepository talks to the patient service REST API.
type HTTPRepository struct {
	gw      *gateway.Client
	baseURL string
}

// NewHTTPRepository takes the service base URL ending in a slash, e.g.
// "http://patients:8000/api/".
func NewHTTPRepository(gw *gateway.Client, baseURL string) *HTTPRepository {
	return &HTTPRepository{gw: gw, baseURL: baseURL}
}

func (r *HTTPRepository) List(ctx context.Context) ([]Patient, error) {
	var items []Patient
	if err := r.gw.Get(ctx, r.baseURL+"patients/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id int64) (*Patient, error) {
	var p Patient
	if err := r.gw.Get(ctx, fmt.Sprintf("%spatients/%d/", r.baseURL, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *HTTPRepository) Create(ctx context.Context, p *Patient) (*Patient, error) {
	var created Patient
	if err := r.gw.Post(ctx, r.baseURL+"patients/", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *HTTPRepository) Update(ctx context.Context, p *Patient) (*Patient, error) {
	var updated Patient
	if err := r.gw.Put(ctx, fmt.Sprintf("%spatients/%d/", r.baseURL, p.ID), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id int64) error {
	return r.gw.Delete(ctx, fmt.Sprintf("%spatients/%d/", r.baseURL, id))
}

func (r *HTTPRepository) Count(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := r.gw.Get(ctx, r.baseURL+"patients/count/", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
