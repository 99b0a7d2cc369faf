package handlers

import (
	"net/http"
	"time"

	"github.com/good-yellow-bee/siteboard/internal/backend"
	"github.com/good-yellow-bee/siteboard/internal/metrics"
	"github.com/good-yellow-bee/siteboard/internal/web/middleware"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/components"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/pages"
)

func (h *Handler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	// Already signed in: skip the form.
	if cookie, err := r.Cookie("session_id"); err == nil {
		if _, ok := h.sessions.Get(cookie.Value); ok {
			http.Redirect(w, r, "/projects", http.StatusFound)
			return
		}
	}
	pages.Login(csrfToken(r), "", nonce(r)).Render(r.Context(), w)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderLoginError(w, r, "Invalid form data")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		renderLoginError(w, r, "Email and password are required")
		return
	}

	ctx := r.Context()
	grant, err := h.api.Login(ctx, email, password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		status := http.StatusUnauthorized
		if backend.KindOf(err) == backend.KindUnknown {
			status = http.StatusBadGateway
		}
		w.WriteHeader(status)
		renderLoginError(w, r, backend.Detail(err))
		return
	}

	user, err := h.api.WithToken(grant.AccessToken).CurrentUser(ctx)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		w.WriteHeader(http.StatusBadGateway)
		renderLoginError(w, r, backend.Detail(err))
		return
	}

	// Invalidate any existing session to prevent session fixation.
	if cookie, err := r.Cookie("session_id"); err == nil {
		h.sessions.Delete(cookie.Value)
	}

	sess, err := h.sessions.Create(user, grant.AccessToken)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		renderLoginError(w, r, "Failed to create session")
		return
	}

	// The session must not outlive the backend token.
	if exp, ok := backend.TokenExpiry(grant.AccessToken); ok && exp.Before(sess.ExpiresAt) {
		h.sessions.Delete(sess.ID)
		sess, err = h.sessions.CreateWithTTL(user, grant.AccessToken, time.Until(exp))
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			renderLoginError(w, r, "Failed to create session")
			return
		}
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()

	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   middleware.IsRequestSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
	})

	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/projects")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/projects", http.StatusFound)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	// Deleting the session also closes its panel controllers via the
	// store's eviction callback.
	if cookie, err := r.Cookie("session_id"); err == nil {
		h.sessions.Delete(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

func renderLoginError(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "text/html")
	if isHTMX(r) {
		components.Alert("error", message).Render(r.Context(), w)
		return
	}
	pages.Login(csrfToken(r), message, nonce(r)).Render(r.Context(), w)
}
