package beds

import "context"

// Repository is the visit backend's bed collection surface. Available is a
// dedicated backend listing, not a local filter, so the aggregate view can
// refresh it independently.
type Repository interface {
	List(ctx context.Context) ([]Bed, error)
	Get(ctx context.Context, id int64) (*Bed, error)
	Create(ctx context.Context, b *Bed) (*Bed, error)
	Update(ctx context.Context, b *Bed) (*Bed, error)
	Delete(ctx context.Context, id int64) error
	Available(ctx context.Context) ([]Bed, error)
	Clean(ctx context.Context, id int64) (*Bed, error)
	Stats(ctx context.Context) (*Stats, error)
}
