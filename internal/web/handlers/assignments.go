package handlers

import (
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/good-yellow-bee/siteboard/internal/backend"
	"github.com/good-yellow-bee/siteboard/internal/models"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/components"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/pages"
)

// ShowAssignmentModal renders the new-assignment dialog. user_id and
// date query parameters preselect the worker and start date.
func (h *Handler) ShowAssignmentModal(w http.ResponseWriter, r *http.Request) {
	selectedUserID, _ := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	startDate := r.URL.Query().Get("date")

	h.renderAssignmentModal(w, r, selectedUserID, startDate, "")
}

func (h *Handler) HandleAssignmentCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	userID, _ := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	projectID, _ := strconv.ParseInt(r.FormValue("project_id"), 10, 64)
	req := backend.CreateAssignmentRequest{
		UserID:    userID,
		ProjectID: projectID,
		StartDate: r.FormValue("start_date"),
		EndDate:   r.FormValue("end_date"),
		Notes:     r.FormValue("notes"),
	}
	if req.UserID <= 0 || req.ProjectID <= 0 || req.StartDate == "" {
		h.renderAssignmentModal(w, r, userID, req.StartDate, "Worker, project, and start date are required")
		return
	}

	if _, err := h.client(r).CreateAssignment(r.Context(), req); err != nil {
		h.renderAssignmentModal(w, r, userID, req.StartDate, backend.Detail(err))
		return
	}

	w.Header().Set("Content-Type", "text/html")
	pages.AssignmentCreated().Render(r.Context(), w)
}

func (h *Handler) renderAssignmentModal(w http.ResponseWriter, r *http.Request, selectedUserID int64, startDate, errMsg string) {
	api := h.client(r)

	var (
		projects []*models.Project
		users    []*models.User
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		projects, err = api.ListProjects(ctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = api.ListUsers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		components.Alert("error", backend.Detail(err)).Render(r.Context(), w)
		return
	}

	// Only running work is assignable.
	active := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status.Active() {
			active = append(active, p)
		}
	}

	w.Header().Set("Content-Type", "text/html")
	pages.AssignmentModal(active, users, selectedUserID, startDate, errMsg, csrfToken(r)).Render(r.Context(), w)
}
