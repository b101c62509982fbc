package visits

import (
	"context"
	"fmt"

	"github.com/medgate/medgate/internal/platform/gateway"
)

// HTTPRepository talks to the visit service's emergency-visits endpoints.
type HTTPRepository struct {
	gw      *gateway.Client
	baseURL string
}

// NewHTTPRepository takes the visit service base URL ending in a slash.
func NewHTTPRepository(gw *gateway.Client, baseURL string) *HTTPRepository {
	return &HTTPRepository{gw: gw, baseURL: baseURL}
}

func (r *HTTPRepository) List(ctx context.Context) ([]Visit, error) {
	var items []Visit
	if err := r.gw.Get(ctx, r.baseURL+"emergency-visits/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPRepository) Active(ctx context.Context) ([]Visit, error) {
	var items []Visit
	if err := r.gw.Get(ctx, r.baseURL+"emergency-visits/active/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id int64) (*Visit, error) {
	var v Visit
	if err := r.gw.Get(ctx, fmt.Sprintf("%semergency-visits/%d/", r.baseURL, id), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *HTTPRepository) Create(ctx context.Context, v *Visit) (*Visit, error) {
	var created Visit
	if err := r.gw.Post(ctx, r.baseURL+"emergency-visits/", v, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *HTTPRepository) Update(ctx context.Context, v *Visit) (*Visit, error) {
	var updated Visit
	if err := r.gw.Patch(ctx, fmt.Sprintf("%semergency-visits/%d/", r.baseURL, v.ID), v, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id int64) error {
	return r.gw.Delete(ctx, fmt.Sprintf("%semergency-visits/%d/", r.baseURL, id))
}

func (r *HTTPRepository) Discharge(ctx context.Context, id int64, diagnosis, instructions string) (*Visit, error) {
	body := map[string]string{
		"discharge_diagnosis":    diagnosis,
		"discharge_instructions": instructions,
	}
	var v Visit
	if err := r.gw.Patch(ctx, fmt.Sprintf("%semergency-visits/%d/discharge/", r.baseURL, id), body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *HTTPRepository) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := r.gw.Get(ctx, r.baseURL+"emergency-visits/stats/", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *HTTPRepository) Count(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := r.gw.Get(ctx, r.baseURL+"emergency-visits/count/", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// HTTPSubResource is the shared HTTP implementation of the visit-scoped
// collections; path is the collection segment, e.g. "vital-signs".
type HTTPSubResource[T any] struct {
	gw      *gateway.Client
	baseURL string
	path    string
}

func NewHTTPSubResource[T any](gw *gateway.Client, baseURL, path string) *HTTPSubResource[T] {
	return &HTTPSubResource[T]{gw: gw, baseURL: baseURL, path: path}
}

func (r *HTTPSubResource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.gw.Get(ctx, fmt.Sprintf("%s%s/", r.baseURL, r.path), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPSubResource[T]) ListByVisit(ctx context.Context, visitID int64) ([]T, error) {
	var items []T
	if err := r.gw.Get(ctx, fmt.Sprintf("%s%s/?visit_id=%d", r.baseURL, r.path, visitID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPSubResource[T]) Create(ctx context.Context, item *T) (*T, error) {
	var created T
	if err := r.gw.Post(ctx, fmt.Sprintf("%s%s/", r.baseURL, r.path), item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *HTTPSubResource[T]) Update(ctx context.Context, id int64, item *T) (*T, error) {
	var updated T
	if err := r.gw.Patch(ctx, fmt.Sprintf("%s%s/%d/", r.baseURL, r.path, id), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *HTTPSubResource[T]) Delete(ctx context.Context, id int64) error {
	return r.gw.Delete(ctx, fmt.Sprintf("%s%s/%d/", r.baseURL, r.path, id))
}

// HTTPPrescriptions adds the dispense action.
type HTTPPrescriptions struct {
	*HTTPSubResource[Prescription]
}

func NewHTTPPrescriptions(gw *gateway.Client, baseURL string) *HTTPPrescriptions {
	return &HTTPPrescriptions{HTTPSubResource: NewHTTPSubResource[Prescription](gw, baseURL, "prescriptions")}
}

func (r *HTTPPrescriptions) Dispense(ctx context.Context, id int64) (*Prescription, error) {
	var p Prescription
	if err := r.gw.Patch(ctx, fmt.Sprintf("%sprescriptions/%d/dispense/", r.baseURL, id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// HTTPAdmissions talks to the admissions endpoints.
type HTTPAdmissions struct {
	gw      *gateway.Client
	baseURL string
}

func NewHTTPAdmissions(gw *gateway.Client, baseURL string) *HTTPAdmissions {
	return &HTTPAdmissions{gw: gw, baseURL: baseURL}
}

// GetByVisit returns the visit's admission, or (nil, nil) when none exists;
// the backend guarantees at most one.
func (r *HTTPAdmissions) GetByVisit(ctx context.Context, visitID int64) (*Admission, error) {
	var items []Admission
	if err := r.gw.Get(ctx, fmt.Sprintf("%sadmissions/?visit_id=%d", r.baseURL, visitID), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *HTTPAdmissions) Create(ctx context.Context, a *Admission) (*Admission, error) {
	var created Admission
	if err := r.gw.Post(ctx, r.baseURL+"admissions/", a, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *HTTPAdmissions) Update(ctx context.Context, a *Admission) (*Admission, error) {
	var updated Admission
	if err := r.gw.Patch(ctx, fmt.Sprintf("%sadmissions/%d/", r.baseURL, a.ID), a, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *HTTPAdmissions) Discharge(ctx context.Context, id int64) (*Admission, error) {
	var a Admission
	if err := r.gw.Patch(ctx, fmt.Sprintf("%sadmissions/%d/discharge/", r.baseURL, id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
