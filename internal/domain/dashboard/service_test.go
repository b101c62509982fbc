package dashboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/medgate/medgate/internal/domain/patients"
)

type mockCounter struct {
	n   int
	err error
}

func (m mockCounter) Count(_ context.Context) (int, error) {
	return m.n, m.err
}

type mockPatients struct {
	items []patients.Patient
	err   error
}

func (m mockPatients) List(_ context.Context, _ patients.Filter) ([]patients.Patient, error) {
	return m.items, m.err
}

func TestStatsCollectsAllCards(t *testing.T) {
	source := mockPatients{items: []patients.Patient{
		{ID: 2, FirstName: "Ann"},
		{ID: 9, FirstName: "Bea"},
		{ID: 5, FirstName: "Cal"},
	}}
	svc := NewService(source, mockCounter{n: 12}, mockCounter{n: 4}, mockCounter{n: 30}, mockCounter{n: 7})

	stats := svc.Stats(context.Background())

	if stats.TotalPatients != 12 || stats.TotalStaff != 4 || stats.InventoryItems != 30 || stats.TotalVisits != 7 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if len(stats.RecentPatients) != 3 || stats.RecentPatients[0].ID != 9 || stats.RecentPatients[2].ID != 2 {
		t.Errorf("recent patients not sorted by id descending: %+v", stats.RecentPatients)
	}
}

func TestStatsCapsRecentPatients(t *testing.T) {
	var items []patients.Patient
	for i := int64(1); i <= 8; i++ {
		items = append(items, patients.Patient{ID: i})
	}
	svc := NewService(mockPatients{items: items}, mockCounter{}, mockCounter{}, mockCounter{}, mockCounter{})

	stats := svc.Stats(context.Background())

	if len(stats.RecentPatients) != 5 {
		t.Fatalf("expected 5 recent patients, got %d", len(stats.RecentPatients))
	}
	if stats.RecentPatients[0].ID != 8 || stats.RecentPatients[4].ID != 4 {
		t.Errorf("unexpected window: %+v", stats.RecentPatients)
	}
}

func TestStatsFailureFallsBackToZeros(t *testing.T) {
	svc := NewService(
		mockPatients{items: []patients.Patient{{ID: 1}}},
		mockCounter{n: 12},
		mockCounter{err: fmt.Errorf("staff service down")},
		mockCounter{n: 30},
		mockCounter{n: 7},
	)

	stats := svc.Stats(context.Background())

	if stats.TotalPatients != 0 || stats.TotalStaff != 0 || stats.InventoryItems != 0 || stats.TotalVisits != 0 {
		t.Errorf("one failed count must zero every card: %+v", stats)
	}
	if stats.RecentPatients == nil || len(stats.RecentPatients) != 0 {
		t.Errorf("expected empty recent patients, got %+v", stats.RecentPatients)
	}
}
