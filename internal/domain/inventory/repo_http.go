package inventory

import (
	"context"
	"fmt"

	"github.com/medgate/medgate/internal/platform/gateway"
)

// HTTPRepository talks to the inventory service REST API.
type HTTPRepository struct {
	gw      *gateway.Client
	baseURL string
}

func NewHTTPRepository(gw *gateway.Client, baseURL string) *HTTPRepository {
	return &HTTPRepository{gw: gw, baseURL: baseURL}
}

func (r *HTTPRepository) List(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := r.gw.Get(ctx, r.baseURL+"inventory/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id int64) (*Item, error) {
	var item Item
	if err := r.gw.Get(ctx, fmt.Sprintf("%sinventory/%d/", r.baseURL, id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *HTTPRepository) Create(ctx context.Context, item *Item) (*Item, error) {
	var created Item
	if err := r.gw.Post(ctx, r.baseURL+"inventory/", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *HTTPRepository) Update(ctx context.Context, item *Item) (*Item, error) {
	var updated Item
	if err := r.gw.Put(ctx, fmt.Sprintf("%sinventory/%d/", r.baseURL, item.ID), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id int64) error {
	return r.gw.Delete(ctx, fmt.Sprintf("%sinventory/%d/", r.baseURL, id))
}

func (r *HTTPRepository) Count(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := r.gw.Get(ctx, r.baseURL+"inventory/count/", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
