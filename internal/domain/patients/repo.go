package patients

import "context"

// Repository is the patient backend's collection surface. There is no
// server-side filtering; List returns the whole collection and the service
// narrows it.
type Repository interface {
	List(ctx context.Context) ([]Patient, error)
	Get(ctx context.Context, id int64) (*Patient, error)
	Create(ctx context.Context, p *Patient) (*Patient, error)
	Update(ctx context.Context, p *Patient) (*Patient, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
