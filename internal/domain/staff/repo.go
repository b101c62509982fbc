package staff

import "context"

// Repository is the staff backend's collection surface.
type Repository interface {
	List(ctx context.Context) ([]Member, error)
	Get(ctx context.Context, id int64) (*Member, error)
	Create(ctx context.Context, m *Member) (*Member, error)
	Update(ctx context.Context, m *Member) (*Member, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// UserDirectory lists the auth service's users, used to resolve display
// names and to offer assignment choices when creating a profile.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]AuthUser, error)
}
