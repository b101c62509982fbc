package coerce

import (
	"encoding/json"
	"testing"
)

func TestIntFromString(t *testing.T) {
	var v struct {
		Quantity Int `json:"quantity"`
	}
	if err := json.Unmarshal([]byte(`{"quantity": "15"}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Quantity != 15 {
		t.Errorf("expected 15, got %d", v.Quantity)
	}
}

func TestIntFromNumber(t *testing.T) {
	var v struct {
		Quantity Int `json:"quantity"`
	}
	if err := json.Unmarshal([]byte(`{"quantity": 7}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Quantity != 7 {
		t.Errorf("expected 7, got %d", v.Quantity)
	}
}

func TestIntGarbageCoercesToZero(t *testing.T) {
	for _, raw := range []string{`""`, `"abc"`, `null`, `{}`} {
		var i Int = 99
		if err := i.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("%s: unexpected error: %v", raw, err)
		}
		if i != 0 {
			t.Errorf("%s: expected 0, got %d", raw, i)
		}
	}
}

func TestIntMarshalsAsNumber(t *testing.T) {
	out, err := json.Marshal(struct {
		Quantity Int `json:"quantity"`
	}{Quantity: 15})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"quantity":15}` {
		t.Errorf("expected number in output, got %s", out)
	}
}

func TestNullIntEmptyIsNull(t *testing.T) {
	var n NullInt
	if err := n.UnmarshalJSON([]byte(`""`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Valid {
		t.Error("expected invalid for empty string")
	}
	out, _ := json.Marshal(n)
	if string(out) != "null" {
		t.Errorf("expected null, got %s", out)
	}
}

func TestNullIntFromString(t *testing.T) {
	var n NullInt
	if err := n.UnmarshalJSON([]byte(`"88"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n.Valid || n.Value != 88 {
		t.Errorf("expected 88, got %+v", n)
	}
}

func TestNullFloatFromString(t *testing.T) {
	var n NullFloat
	if err := n.UnmarshalJSON([]byte(`"37.5"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n.Valid || n.Value != 37.5 {
		t.Errorf("expected 37.5, got %+v", n)
	}
}

func TestNullFloatGarbageIsNull(t *testing.T) {
	var n NullFloat
	n.Valid = true
	if err := n.UnmarshalJSON([]byte(`"hot"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Valid {
		t.Error("expected invalid for non-numeric string")
	}
}
