package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/medgate/medgate/pkg/listview"
	"github.com/medgate/medgate/pkg/lookup"
)

// Filter narrows the staff list. Query matches the resolved user name and
// department.
type Filter struct {
	Query      string
	Role       string
	Department string
	IsActive   *bool
}

type Service struct {
	repo  Repository
	users UserDirectory
}

func NewService(repo Repository, users UserDirectory) *Service {
	return &Service{repo: repo, users: users}
}

// userTable builds the id -> display name table. A failed user fetch does
// not fail the listing; names degrade to the id fallback.
func (s *Service) userTable(ctx context.Context) lookup.Table {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("user directory unavailable, falling back to ids")
		return lookup.Table{}
	}
	return lookup.Build(users, func(u AuthUser) int64 { return u.ID }, userLabel)
}

func userLabel(u AuthUser) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.Username
	}
	return name
}

// List fetches the collection, resolves user names and applies the filter.
func (s *Service) List(ctx context.Context, f Filter) ([]View, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := s.userTable(ctx)

	views := make([]View, 0, len(items))
	for _, m := range items {
		views = append(views, View{Member: m, UserName: names.Label(m.UserID)})
	}
	return listview.Visible(views, func(v View) bool {
		return listview.MatchText(f.Query, v.UserName, v.Department, v.Specialization) &&
			listview.MatchEnum(f.Role, v.Role) &&
			listview.MatchEnum(f.Department, v.Department) &&
			listview.MatchBool(f.IsActive, v.IsActive)
	}), nil
}

// Users exposes the assignable user set for profile creation forms.
func (s *Service) Users(ctx context.Context) ([]AuthUser, error) {
	return s.users.ListUsers(ctx)
}

// Submit normalizes the draft and creates or updates by id presence. The
// linked user is immutable: on update the stored user_id always wins over
// whatever the draft carries.
func (s *Service) Submit(ctx context.Context, draft Draft) ([]View, error) {
	m := draft.Normalize()
	var err error
	if m.ID > 0 {
		existing, getErr := s.repo.Get(ctx, m.ID)
		if getErr != nil {
			return nil, getErr
		}
		m.UserID = existing.UserID
		_, err = s.repo.Update(ctx, &m)
	} else {
		if m.UserID == 0 {
			return nil, fmt.Errorf("user_id is required")
		}
		_, err = s.repo.Create(ctx, &m)
	}
	if err != nil {
		return nil, err
	}
	return s.List(ctx, Filter{})
}

// Delete removes the profile and returns the refreshed collection.
func (s *Service) Delete(ctx context.Context, id int64) ([]View, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.List(ctx, Filter{})
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
