package staff

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

type mockRepo struct {
	items  []Member
	nextID int64
}

func (m *mockRepo) List(_ context.Context) ([]Member, error) {
	out := make([]Member, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockRepo) Get(_ context.Context, id int64) (*Member, error) {
	for _, s := range m.items {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Create(_ context.Context, s *Member) (*Member, error) {
	m.nextID++
	s.ID = m.nextID
	m.items = append(m.items, *s)
	return s, nil
}

func (m *mockRepo) Update(_ context.Context, s *Member) (*Member, error) {
	for i := range m.items {
		if m.items[i].ID == s.ID {
			m.items[i] = *s
			return s, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("not found")
}

func (m *mockRepo) Count(_ context.Context) (int, error) {
	return len(m.items), nil
}

type mockDirectory struct {
	users []AuthUser
	err   error
}

func (m *mockDirectory) ListUsers(_ context.Context) ([]AuthUser, error) {
	return m.users, m.err
}

func newTestService() (*Service, *mockRepo) {
	repo := &mockRepo{
		nextID: 2,
		items: []Member{
			{ID: 1, UserID: 10, Role: RoleTechnician, Department: "Radiology", IsActive: true},
			{ID: 2, UserID: 11, Role: RoleResident, Department: "Emergency", IsActive: false},
		},
	}
	dir := &mockDirectory{users: []AuthUser{
		{ID: 10, FirstName: "Maria", LastName: "Lopez"},
		{ID: 11, Username: "jdoe"},
	}}
	return NewService(repo, dir), repo
}

func TestListResolvesUserNames(t *testing.T) {
	svc, _ := newTestService()
	views, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views[0].UserName != "Maria Lopez" {
		t.Errorf("expected full name, got %q", views[0].UserName)
	}
	if views[1].UserName != "jdoe" {
		t.Errorf("expected username fallback, got %q", views[1].UserName)
	}
}

func TestListDanglingUserFallsBackToID(t *testing.T) {
	repo := &mockRepo{items: []Member{{ID: 1, UserID: 99, Role: RoleIntern}}}
	svc := NewService(repo, &mockDirectory{})
	views, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views[0].UserName != "ID: 99" {
		t.Errorf("expected id fallback, got %q", views[0].UserName)
	}
}

func TestListDirectoryFailureDegrades(t *testing.T) {
	repo := &mockRepo{items: []Member{{ID: 1, UserID: 10}}}
	svc := NewService(repo, &mockDirectory{err: fmt.Errorf("down")})
	views, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("directory failure must not fail the listing: %v", err)
	}
	if views[0].UserName != "ID: 10" {
		t.Errorf("expected id fallback, got %q", views[0].UserName)
	}
}

func TestListFilters(t *testing.T) {
	svc, _ := newTestService()
	views, _ := svc.List(context.Background(), Filter{Role: RoleTechnician})
	if len(views) != 1 || views[0].ID != 1 {
		t.Errorf("role filter failed: %v", views)
	}
	active := true
	views, _ = svc.List(context.Background(), Filter{IsActive: &active})
	if len(views) != 1 || views[0].ID != 1 {
		t.Errorf("is_active filter failed: %v", views)
	}
	views, _ = svc.List(context.Background(), Filter{Query: "lopez"})
	if len(views) != 1 || views[0].ID != 1 {
		t.Errorf("name search failed: %v", views)
	}
}

func TestSubmitCreateRequiresUser(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Submit(context.Background(), Draft{Role: RoleIntern}); err == nil {
		t.Fatal("expected error for missing user_id")
	}
}

func TestSubmitUpdateKeepsLinkedUser(t *testing.T) {
	svc, repo := newTestService()
	_, err := svc.Submit(context.Background(), Draft{ID: 1, UserID: 999, Role: RoleAdministrator, Department: "Admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.items[0].UserID != 10 {
		t.Errorf("linked user must not change, got %d", repo.items[0].UserID)
	}
	if repo.items[0].Role != RoleAdministrator {
		t.Errorf("update not applied: %+v", repo.items[0])
	}
}

func TestNormalizeStripsPasswordAndFlattensUser(t *testing.T) {
	raw := []byte(`{"id":1,"user":{"id":10,"username":"x"},"password":"hunter2","role":"TEC","department":"Lab","hire_date":"2020-01-01","is_active":true}`)
	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := d.Normalize()
	if m.UserID != 10 {
		t.Errorf("nested user not flattened, got %d", m.UserID)
	}
	wire, _ := json.Marshal(m)
	if strings.Contains(string(wire), "password") {
		t.Errorf("password must not survive normalization: %s", wire)
	}
	if strings.Contains(string(wire), `"user":{`) {
		t.Errorf("nested user must not survive normalization: %s", wire)
	}
}

func TestNormalizeBareUserID(t *testing.T) {
	var d Draft
	json.Unmarshal([]byte(`{"user":10,"role":"TEC","hire_date":"2020-01-01"}`), &d)
	if m := d.Normalize(); m.UserID != 10 {
		t.Errorf("bare user id not flattened, got %d", m.UserID)
	}
}

