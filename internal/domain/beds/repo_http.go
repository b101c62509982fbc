package beds

import (
	"context"
	"fmt"

	"github.com/medgate/medgate/internal/platform/gateway"
)

// HTTPRepository talks to the visit service's bed endpoints.
type HTTPRepository struct {
	gw      *gateway.Client
	baseURL string
}

// NewHTTPRepository takes the visit service base URL ending in a slash.
func NewHTTPRepository(gw *gateway.Client, baseURL string) *HTTPRepository {
	return &HTTPRepository{gw: gw, baseURL: baseURL}
}

func (r *HTTPRepository) List(ctx context.Context) ([]Bed, error) {
	var items []Bed
	if err := r.gw.Get(ctx, r.baseURL+"beds/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id int64) (*Bed, error) {
	var b Bed
	if err := r.gw.Get(ctx, fmt.Sprintf("%sbeds/%d/", r.baseURL, id), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *HTTPRepository) Create(ctx context.Context, b *Bed) (*Bed, error) {
	var created Bed
	if err := r.gw.Post(ctx, r.baseURL+"beds/", b, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *HTTPRepository) Update(ctx context.Context, b *Bed) (*Bed, error) {
	var updated Bed
	if err := r.gw.Patch(ctx, fmt.Sprintf("%sbeds/%d/", r.baseURL, b.ID), b, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id int64) error {
	return r.gw.Delete(ctx, fmt.Sprintf("%sbeds/%d/", r.baseURL, id))
}

func (r *HTTPRepository) Available(ctx context.Context) ([]Bed, error) {
	var items []Bed
	if err := r.gw.Get(ctx, r.baseURL+"beds/available/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPRepository) Clean(ctx context.Context, id int64) (*Bed, error) {
	var b Bed
	if err := r.gw.Patch(ctx, fmt.Sprintf("%sbeds/%d/clean/", r.baseURL, id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *HTTPRepository) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := r.gw.Get(ctx, r.baseURL+"beds/stats/", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
