package beds

import (
	"context"

	"github.com/medgate/medgate/pkg/listview"
)

// Filter narrows the bed list. Query matches bed number, location and
// special equipment.
type Filter struct {
	Query       string
	Status      string
	Location    string
	IsIsolation *bool
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f Filter) ([]Bed, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return listview.Visible(items, func(b Bed) bool {
		return listview.MatchText(f.Query, b.BedNumber, b.Location, b.SpecialEquipment) &&
			listview.MatchEnum(f.Status, b.Status) &&
			listview.MatchEnum(f.Location, b.Location) &&
			listview.MatchBool(f.IsIsolation, b.IsIsolation)
	}), nil
}

// Available lists beds the backend reports as assignable right now.
func (s *Service) Available(ctx context.Context) ([]Bed, error) {
	return s.repo.Available(ctx)
}

func (s *Service) Submit(ctx context.Context, draft Bed) ([]Bed, error) {
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

func (s *Service) Delete(ctx context.Context, id int64) ([]Bed, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Clean stamps the bed's last_cleaned time on the backend and returns the
// refreshed collection.
func (s *Service) Clean(ctx context.Context, id int64) ([]Bed, error) {
	if _, err := s.repo.Clean(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}
