package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoAttachesToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.Client())
	ctx := WithToken(context.Background(), "abc123")
	var out map[string]bool
	if err := c.Get(ctx, srv.URL, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Token abc123" {
		t.Errorf("unexpected auth header: %q", gotAuth)
	}
	if !out["ok"] {
		t.Error("response not decoded")
	}
}

func TestDoNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.Client())
	if err := c.Get(context.Background(), srv.URL, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no auth header, got %q", gotAuth)
	}
}

func TestDoEncodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %q", ct)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.Client())
	var out struct {
		ID int64 `json:"id"`
	}
	err := c.Post(context.Background(), srv.URL, map[string]string{"name": "x"}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 7 {
		t.Errorf("unexpected id: %d", out.ID)
	}
}

func TestDoErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"name":["This field is required."]}`))
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.Client())
	err := c.Get(context.Background(), srv.URL, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status: %d", apiErr.StatusCode)
	}
	if !apiErr.IsValidation() {
		t.Error("400 should be a validation error")
	}
	if got := apiErr.Message(); got != "name: This field is required." {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestFlatten(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"field errors sorted", `{"b":["second"],"a":["first"]}`, "a: first; b: second"},
		{"multiple messages per field", `{"name":["too short","required"]}`, "name: too short, required"},
		{"detail wins", `{"detail":"Not found."}`, "Not found."},
		{"string field value", `{"status":"invalid"}`, "status: invalid"},
		{"bare string", `"boom"`, "boom"},
		{"empty body", ``, GenericFailure},
		{"not json", `<html>500</html>`, GenericFailure},
		{"empty object", `{}`, GenericFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Flatten([]byte(tc.body)); got != tc.want {
				t.Errorf("Flatten(%s) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

