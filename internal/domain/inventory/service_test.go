package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/medgate/medgate/pkg/coerce"
)

type mockRepo struct {
	items   []Item
	nextID  int64
	created []Item
	updated []Item
}

func (m *mockRepo) List(_ context.Context) ([]Item, error) {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockRepo) Get(_ context.Context, id int64) (*Item, error) {
	for _, i := range m.items {
		if i.ID == id {
			return &i, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Create(_ context.Context, item *Item) (*Item, error) {
	m.nextID++
	item.ID = m.nextID
	m.items = append(m.items, *item)
	m.created = append(m.created, *item)
	return item, nil
}

func (m *mockRepo) Update(_ context.Context, item *Item) (*Item, error) {
	m.updated = append(m.updated, *item)
	for i := range m.items {
		if m.items[i].ID == item.ID {
			m.items[i] = *item
			return item, nil
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

func seededRepo() *mockRepo {
	return &mockRepo{
		nextID: 3,
		items: []Item{
			{ID: 1, Name: "Sterile Gauze", Category: CategorySupplies, Quantity: 200, MinimumStock: 50},
			{ID: 2, Name: "Amoxicillin", Category: CategoryMedication, Quantity: 10, MinimumStock: 30, Supplier: "PharmaCo"},
			{ID: 3, Name: "Defibrillator", Category: CategoryEquipment, Quantity: 4, MinimumStock: 2},
		},
	}
}

func TestListCategoryFilter(t *testing.T) {
	svc := NewService(seededRepo())
	items, err := svc.List(context.Background(), Filter{Category: CategoryMedication})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("unexpected result: %v", items)
	}
}

func TestListQuantityRange(t *testing.T) {
	svc := NewService(seededRepo())
	min, max := 5, 100
	items, err := svc.List(context.Background(), Filter{MinQuantity: &min, MaxQuantity: &max})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("unexpected result: %v", items)
	}
}

func TestListLowStock(t *testing.T) {
	svc := NewService(seededRepo())
	low := true
	items, err := svc.List(context.Background(), Filter{LowStock: &low})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("expected only the under-stocked item, got %v", items)
	}
}

func TestListSupplierSearch(t *testing.T) {
	svc := NewService(seededRepo())
	items, _ := svc.List(context.Background(), Filter{Query: "pharmaco"})
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("unexpected result: %v", items)
	}
}

func TestSubmitCoercesStringQuantities(t *testing.T) {
	raw := []byte(`{"name":"Saline","category":"SUPP","quantity":"15","unit":"bags","minimum_stock":"","expiry_date":""}`)
	var draft Item
	if err := json.Unmarshal(raw, &draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Quantity != 15 {
		t.Errorf(`"15" should coerce to 15, got %d`, draft.Quantity)
	}
	if draft.MinimumStock != 0 {
		t.Errorf("empty string should coerce to 0, got %d", draft.MinimumStock)
	}

	repo := seededRepo()
	svc := NewService(repo)
	if _, err := svc.Submit(context.Background(), draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wire, _ := json.Marshal(repo.created[0])
	if !strings.Contains(string(wire), `"quantity":15`) {
		t.Errorf("quantity must marshal as a number: %s", wire)
	}
	if !strings.Contains(string(wire), `"expiry_date":null`) {
		t.Errorf("empty expiry must become null: %s", wire)
	}
}

func TestSubmitUpdateByID(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	items, err := svc.Submit(context.Background(), Item{ID: 1, Name: "Sterile Gauze XL", Category: CategorySupplies, Quantity: coerce.Int(180)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one update call, got %d", len(repo.updated))
	}
	if len(items) != 3 {
		t.Errorf("update must not grow the collection, got %d", len(items))
	}
}

func TestDeleteRefetches(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo)
	items, err := svc.Delete(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 remaining, got %d", len(items))
	}
}

func TestIsLowStock(t *testing.T) {
	if (Item{Quantity: 10, MinimumStock: 30}).IsLowStock() != true {
		t.Error("10 of minimum 30 is low")
	}
	if (Item{Quantity: 50, MinimumStock: 30}).IsLowStock() {
		t.Error("50 of minimum 30 is not low")
	}
}
