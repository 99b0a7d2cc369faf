package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/good-yellow-bee/siteboard/internal/backend"
	"github.com/good-yellow-bee/siteboard/internal/models"
	"github.com/good-yellow-bee/siteboard/internal/policy"
	"github.com/good-yellow-bee/siteboard/internal/web/middleware"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/pages"
)

func (h *Handler) ShowProjects(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	projects, err := h.client(r).ListProjects(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		pages.Projects(sess, nil, backend.Detail(err), csrfToken(r), nonce(r)).Render(r.Context(), w)
		return
	}
	pages.Projects(sess, projects, "", csrfToken(r), nonce(r)).Render(r.Context(), w)
}

func (h *Handler) ShowProjectEdit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	if !h.policy.Allowed(policy.ActionProjectEdit, sess.Role) {
		w.WriteHeader(http.StatusForbidden)
		pages.ProjectDenied(sess, csrfToken(r), nonce(r)).Render(r.Context(), w)
		return
	}

	id, ok := urlID(r, "projectID")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		pages.ProjectNotFound(sess, csrfToken(r), nonce(r)).Render(r.Context(), w)
		return
	}

	api := h.client(r)

	// The page needs four resources; fetch them concurrently and fail
	// as one.
	var (
		project  *models.Project
		drawings []*models.Drawing
		members  []*models.Member
		users    []*models.User
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		project, err = api.GetProject(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		drawings, err = api.ListDrawings(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		members, err = api.ListMembers(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		users, err = api.ListUsers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if backend.IsNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			pages.ProjectNotFound(sess, csrfToken(r), nonce(r)).Render(r.Context(), w)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		pages.ProjectLoadError(sess, backend.Detail(err), csrfToken(r), nonce(r)).Render(r.Context(), w)
		return
	}

	successMsg := ""
	if r.URL.Query().Get("saved") == "1" {
		successMsg = "Project saved."
	}
	h.renderProjectEdit(w, r, project, drawings, members, users, "", successMsg)
}

func (h *Handler) HandleProjectUpdate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	id, ok := urlID(r, "projectID")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		pages.ProjectNotFound(sess, csrfToken(r), nonce(r)).Render(r.Context(), w)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	req := backend.UpdateProjectRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Address:     r.FormValue("address"),
		Status:      models.ProjectStatus(r.FormValue("status")),
		StartDate:   r.FormValue("start_date"),
		EndDate:     r.FormValue("end_date"),
	}

	api := h.client(r)
	if _, err := api.UpdateProject(r.Context(), id, req); err != nil {
		// Keep the submitted values on screen; only the side panels are
		// re-read.
		submitted := &models.Project{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Address:     req.Address,
			Status:      req.Status,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
		}
		drawings, members, users, ferr := h.fetchPanels(r, id)
		if ferr != nil {
			w.WriteHeader(http.StatusBadGateway)
			pages.ProjectLoadError(sess, backend.Detail(ferr), csrfToken(r), nonce(r)).Render(r.Context(), w)
			return
		}
		if backend.KindOf(err) == backend.KindValidation {
			w.WriteHeader(http.StatusUnprocessableEntity)
		} else {
			w.WriteHeader(http.StatusBadGateway)
		}
		h.renderProjectEdit(w, r, submitted, drawings, members, users, backend.Detail(err), "")
		return
	}

	// Post-redirect-get; the GET re-reads the saved project once.
	http.Redirect(w, r, r.URL.Path+"?saved=1", http.StatusSeeOther)
}

func (h *Handler) renderProjectEdit(w http.ResponseWriter, r *http.Request, project *models.Project, drawings []*models.Drawing, members []*models.Member, users []*models.User, errMsg, successMsg string) {
	sess := middleware.GetSession(r)
	token := csrfToken(r)

	drawingsPanel := pages.DrawingsSection(project.ID, drawings,
		h.policy.Allowed(policy.ActionDrawingManage, sess.Role), "", token)
	membersPanel := pages.MembersSection(project.ID, members, candidateUsers(users, members),
		h.policy.Allowed(policy.ActionMemberManage, sess.Role), "", token)

	pages.ProjectEdit(sess, project, drawingsPanel, membersPanel, errMsg, successMsg, token, nonce(r)).Render(r.Context(), w)
}

// fetchPanels reads the side-panel resources for a project page.
func (h *Handler) fetchPanels(r *http.Request, projectID int64) (drawings []*models.Drawing, members []*models.Member, users []*models.User, err error) {
	api := h.client(r)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		drawings, err = api.ListDrawings(ctx, projectID)
		return err
	})
	g.Go(func() (err error) {
		members, err = api.ListMembers(ctx, projectID)
		return err
	})
	g.Go(func() (err error) {
		users, err = api.ListUsers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return drawings, members, users, nil
}

// candidateUsers filters out users already on the team.
func candidateUsers(users []*models.User, members []*models.Member) []*models.User {
	onTeam := make(map[int64]bool, len(members))
	for _, m := range members {
		onTeam[m.UserID] = true
	}
	candidates := make([]*models.User, 0, len(users))
	for _, u := range users {
		if !onTeam[u.ID] {
			candidates = append(candidates, u)
		}
	}
	return candidates
}
