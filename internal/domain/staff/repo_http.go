package staff

import (
	"context"
	"fmt"

	"github.com/medgate/medgate/internal/platform/gateway"
)

// HTTPRepository talks to the staff service REST API.
type HTTPRepository struct {
	gw      *gateway.Client
	baseURL string
}

func NewHTTPRepository(gw *gateway.Client, baseURL string) *HTTPRepository {
	return &HTTPRepository{gw: gw, baseURL: baseURL}
}

func (r *HTTPRepository) List(ctx context.Context) ([]Member, error) {
	var items []Member
	if err := r.gw.Get(ctx, r.baseURL+"staff/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id int64) (*Member, error) {
	var m Member
	if err := r.gw.Get(ctx, fmt.Sprintf("%sstaff/%d/", r.baseURL, id), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *HTTPRepository) Create(ctx context.Context, m *Member) (*Member, error) {
	var created Member
	if err := r.gw.Post(ctx, r.baseURL+"staff/", m, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *HTTPRepository) Update(ctx context.Context, m *Member) (*Member, error) {
	var updated Member
	if err := r.gw.Put(ctx, fmt.Sprintf("%sstaff/%d/", r.baseURL, m.ID), m, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id int64) error {
	return r.gw.Delete(ctx, fmt.Sprintf("%sstaff/%d/", r.baseURL, id))
}

func (r *HTTPRepository) Count(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := r.gw.Get(ctx, r.baseURL+"staff/count/", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// HTTPUserDirectory reads the auth service's user list.
type HTTPUserDirectory struct {
	gw      *gateway.Client
	authURL string
}

func NewHTTPUserDirectory(gw *gateway.Client, authURL string) *HTTPUserDirectory {
	return &HTTPUserDirectory{gw: gw, authURL: authURL}
}

func (r *HTTPUserDirectory) ListUsers(ctx context.Context) ([]AuthUser, error) {
	var users []AuthUser
	if err := r.gw.Get(ctx, r.authURL+"users/", &users); err != nil {
		return nil, err
	}
	return users, nil
}
