package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"

	"github.com/good-yellow-bee/siteboard/internal/policy"
	"github.com/good-yellow-bee/siteboard/internal/web/middleware"
)

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger(s.verbose))
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders)

	csrfMiddleware := csrf.Protect(
		s.csrfKey,
		csrf.Secure(s.useSecureCookies),
		csrf.Path("/"),
	)
	r.Use(csrfMiddleware)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", s.StaticFS()))

	// Public routes
	r.Get("/login", s.handler.ShowLogin)
	r.With(middleware.RateLimitLogin(s.loginLimiter)).Post("/login", s.handler.HandleLogin)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(s.sessions))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/projects", http.StatusFound)
		})
		r.Post("/logout", s.handler.HandleLogout)

		r.Get("/projects", s.handler.ShowProjects)
		r.Get("/projects/{projectID}", s.handler.ShowProjectEdit)
		r.Get("/projects/{projectID}/drawings", s.handler.ShowDrawingsSection)
		r.Get("/projects/{projectID}/members", s.handler.ShowMembersSection)
		r.With(middleware.RequireAction(s.policy, policy.ActionProjectEdit)).
			Post("/projects/{projectID}", s.handler.HandleProjectUpdate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAction(s.policy, policy.ActionDrawingManage))
			r.Post("/projects/{projectID}/drawings", s.handler.HandleDrawingUpload)
			r.Post("/drawings/{drawingID}", s.handler.HandleDrawingUpdate)
			r.Post("/drawings/{drawingID}/delete", s.handler.HandleDrawingDelete)
		})
		r.Get("/drawings/{drawingID}/download", s.handler.HandleDrawingDownload)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAction(s.policy, policy.ActionMemberManage))
			r.Post("/projects/{projectID}/members", s.handler.HandleMemberAdd)
			r.Post("/projects/{projectID}/members/{userID}/delete", s.handler.HandleMemberRemove)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAction(s.policy, policy.ActionAssignmentCreate))
			r.Get("/assignments/new", s.handler.ShowAssignmentModal)
			r.Post("/assignments", s.handler.HandleAssignmentCreate)
		})

		r.Get("/tools/{toolID}", s.handler.ShowTool)
	})

	return r
}
