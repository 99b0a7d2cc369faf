package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListProjects_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/" {
			t.Errorf("path = %s, want /projects/", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "name": "Harbor Bridge", "status": "in_progress"},
			{"id": 2, "name": "Depot Annex", "status": "planning"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	projects, err := c.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("len = %d, want 2", len(projects))
	}
	if projects[0].Name != "Harbor Bridge" {
		t.Errorf("name = %q, want Harbor Bridge", projects[0].Name)
	}
}

func TestWithToken_SetsBearerHeader(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer srv.Close()

	c := New(srv.URL).WithToken("tok-123")
	if _, err := c.ListProjects(context.Background()); err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestWithToken_DoesNotMutateBase(t *testing.T) {
	base := New("http://example.com")
	derived := base.WithToken("tok")
	if base.token != "" {
		t.Error("WithToken mutated the base client")
	}
	if derived.token != "tok" {
		t.Errorf("derived token = %q, want tok", derived.token)
	}
}

func TestErrorKindMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   Kind
	}{
		{http.StatusNotFound, KindNotFound},
		{http.StatusForbidden, KindForbidden},
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusConflict, KindValidation},
		{http.StatusInternalServerError, KindUnknown},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
		}))

		c := New(srv.URL)
		_, err := c.GetProject(context.Background(), 1)
		srv.Close()

		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		if got := KindOf(err); got != tt.kind {
			t.Errorf("status %d: kind = %s, want %s", tt.status, got, tt.kind)
		}
		if got := Detail(err); got != "boom" {
			t.Errorf("status %d: detail = %q, want boom", tt.status, got)
		}
	}
}

func TestDecodeError_MissingDetailFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetProject(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := Detail(err); got != "Bad Gateway" {
		t.Errorf("detail = %q, want Bad Gateway", got)
	}
}

func TestIsNotFound(t *testing.T) {
	err := &Error{Kind: KindNotFound, Status: 404, Detail: "Project not found"}
	if !IsNotFound(err) {
		t.Error("IsNotFound = false for 404 error")
	}
	if IsNotFound(context.Canceled) {
		t.Error("IsNotFound = true for non-backend error")
	}
}
