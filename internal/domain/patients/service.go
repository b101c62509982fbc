package patients

import (
	"context"
	"time"

	"github.com/medgate/medgate/pkg/listview"
)

// Filter narrows the patient list. Query matches name and phone fields as a
// case-insensitive substring; age bounds are inclusive and computed from the
// birth date.
type Filter struct {
	Query  string
	Gender string
	MinAge *int
	MaxAge *int
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List fetches the full collection and applies the filter locally.
func (s *Service) List(ctx context.Context, f Filter) ([]Patient, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return listview.Visible(items, func(p Patient) bool {
		return listview.MatchText(f.Query, p.FirstName, p.LastName, p.FullName(), p.PhoneNumber) &&
			listview.MatchEnum(f.Gender, p.Gender) &&
			matchAge(p, now, f.MinAge, f.MaxAge)
	}), nil
}

func matchAge(p Patient, now time.Time, min, max *int) bool {
	if min == nil && max == nil {
		return true
	}
	return listview.MatchIntRange(p.AgeAt(now), min, max)
}

// Submit creates or updates depending on whether the draft carries an id,
// then re-fetches the whole collection so the caller always sees backend
// truth rather than a local merge.
func (s *Service) Submit(ctx context.Context, draft Patient) ([]Patient, error) {
	var err error
	if draft.ID > 0 {
		_, err = s.repo.Update(ctx, &draft)
	} else {
		_, err = s.repo.Create(ctx, &draft)
	}
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Delete removes the patient and returns the refreshed collection.
func (s *Service) Delete(ctx context.Context, id int64) ([]Patient, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
