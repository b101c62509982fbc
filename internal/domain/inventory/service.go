package inventory

import (
	"context"

	"github.com/medgate/medgate/pkg/listview"
)

// Filter narrows the inventory list. Query matches name, description and
// supplier; quantity bounds are inclusive.
type Filter struct {
	Query       string
	Category    string
	MinQuantity *int
	MaxQuantity *int
	LowStock    *bool
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f Filter) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return listview.Visible(items, func(i Item) bool {
		return listview.MatchText(f.Query, i.Name, i.Description, i.Supplier) &&
			listview.MatchEnum(f.Category, i.Category) &&
			listview.MatchIntRange(int(i.Quantity), f.MinQuantity, f.MaxQuantity) &&
			listview.MatchBool(f.LowStock, i.IsLowStock())
	}), nil
}

// Submit normalizes the draft (numeric coercion happened at decode time,
// empty expiry becomes null here) and creates or updates by id presence.
func (s *Service) Submit(ctx context.Context, draft Item) ([]Item, error) {
	draft.Normalize()
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

func (s *Service) Delete(ctx context.Context, id int64) ([]Item, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
