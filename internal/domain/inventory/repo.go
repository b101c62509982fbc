package inventory

import "context"

// Repository is the inventory backend's collection surface.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int64) (*Item, error)
	Create(ctx context.Context, item *Item) (*Item, error)
	Update(ctx context.Context, item *Item) (*Item, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
