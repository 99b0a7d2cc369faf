package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/good-yellow-bee/siteboard/internal/models"
)

func TestHandleLogin_MissingCredentials(t *testing.T) {
	f := newFakeBackend(t)
	h := newTestHandler(f)

	req := httptest.NewRequest("POST", "/login", strings.NewReader("email=&password="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if f.count("POST /auth/login") != 0 {
		t.Error("empty credentials should not reach the backend")
	}
}

func TestHandleLogin_BadCredentials_DetailVerbatim(t *testing.T) {
	f := newFakeBackend(t)
	f.respondError("/auth/login", http.StatusUnauthorized, "Incorrect email or password")
	h := newTestHandler(f)

	req := httptest.NewRequest("POST", "/login", strings.NewReader("email=pat@example.com&password=nope"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Incorrect email or password") {
		t.Error("backend detail not surfaced verbatim")
	}
	// HTMX gets the alert fragment, not the whole page.
	if strings.Contains(body, "Sign in to SiteBoard") {
		t.Error("HTMX response should not contain the full login page")
	}
}

func TestHandleLogin_Success_HTMXRedirect(t *testing.T) {
	f := newFakeBackend(t)
	f.respondJSON("/auth/login", map[string]any{
		"access_token": "opaque-token",
		"token_type":   "bearer",
		"expires_in":   3600,
	})
	f.respondJSON("/users/me", &models.User{ID: 1, FullName: "Pat Lee", Email: "pat@example.com", Role: models.RoleAdmin})
	h := newTestHandler(f)

	req := httptest.NewRequest("POST", "/login", strings.NewReader("email=pat@example.com&password=hunter2"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("HX-Redirect"); got != "/projects" {
		t.Errorf("HX-Redirect = %q, want /projects", got)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_id" {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("session cookie not set")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}

	sess, ok := h.sessions.Get(cookie.Value)
	if !ok {
		t.Fatal("session not stored")
	}
	if sess.Token != "opaque-token" || sess.Role != models.RoleAdmin {
		t.Errorf("session = %+v, want backend token and role", sess)
	}
}

func TestHandleLogin_Success_FormRedirect(t *testing.T) {
	f := newFakeBackend(t)
	f.respondJSON("/auth/login", map[string]any{
		"access_token": "opaque-token",
		"token_type":   "bearer",
		"expires_in":   3600,
	})
	f.respondJSON("/users/me", &models.User{ID: 1, FullName: "Pat Lee", Role: models.RoleWorker})
	h := newTestHandler(f)

	req := httptest.NewRequest("POST", "/login", strings.NewReader("email=pat@example.com&password=hunter2"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/projects" {
		t.Errorf("redirect location = %s, want /projects", loc)
	}
}

func TestHandleLogout_ClearsSession(t *testing.T) {
	f := newFakeBackend(t)
	h := newTestHandler(f)

	sess, err := h.sessions.Create(&models.User{ID: 1, FullName: "Pat Lee", Role: models.RoleAdmin}, "tok")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: sess.ID})
	rec := httptest.NewRecorder()
	h.HandleLogout(rec, req)

	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if _, ok := h.sessions.Get(sess.ID); ok {
		t.Error("session still live after logout")
	}
}
