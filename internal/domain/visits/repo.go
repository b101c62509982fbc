package visits

import "context"

// Repository is the visit backend's emergency-visit surface.
type Repository interface {
	List(ctx context.Context) ([]Visit, error)
	Active(ctx context.Context) ([]Visit, error)
	Get(ctx context.Context, id int64) (*Visit, error)
	Create(ctx context.Context, v *Visit) (*Visit, error)
	Update(ctx context.Context, v *Visit) (*Visit, error)
	Delete(ctx context.Context, id int64) error
	Discharge(ctx context.Context, id int64, diagnosis, instructions string) (*Visit, error)
	Stats(ctx context.Context) (*Stats, error)
	Count(ctx context.Context) (int, error)
}

// SubResourceRepository is the common surface of the four visit-scoped
// collections (vital signs, treatments, diagnoses, prescriptions).
type SubResourceRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	ListByVisit(ctx context.Context, visitID int64) ([]T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id int64, item *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// PrescriptionsRepository adds the dispense action to the common surface.
type PrescriptionsRepository interface {
	SubResourceRepository[Prescription]
	Dispense(ctx context.Context, id int64) (*Prescription, error)
}

// AdmissionsRepository covers the one-per-visit admission records.
type AdmissionsRepository interface {
	GetByVisit(ctx context.Context, visitID int64) (*Admission, error)
	Create(ctx context.Context, a *Admission) (*Admission, error)
	Update(ctx context.Context, a *Admission) (*Admission, error)
	Discharge(ctx context.Context, id int64) (*Admission, error)
}
