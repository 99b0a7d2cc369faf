package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/good-yellow-bee/siteboard/internal/controller"
	"github.com/good-yellow-bee/siteboard/internal/policy"
	"github.com/good-yellow-bee/siteboard/internal/web/middleware"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/pages"
)

// membersPanel returns the session's controller for a project's team,
// creating it on first use. Loading reads the team and the user list
// together so the add picker stays consistent with the rows.
func (h *Handler) membersPanel(r *http.Request, projectID int64) *controller.Resource[memberPanel] {
	sess := middleware.GetSession(r)
	api := h.client(r)
	return h.panels.membersFor(panelKey(sess.ID, projectID), func(ctx context.Context) (memberPanel, error) {
		var panel memberPanel
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			panel.Members, err = api.ListMembers(gctx, projectID)
			return err
		})
		g.Go(func() (err error) {
			panel.Users, err = api.ListUsers(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return memberPanel{}, err
		}
		return panel, nil
	})
}

// ShowMembersSection serves the team panel as an HTMX partial.
func (h *Handler) ShowMembersSection(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	res := h.membersPanel(r, projectID)
	if err := res.Load(); err != nil {
		renderMutationError(w, r, "#members-errors", err)
		return
	}
	h.renderMembersSection(w, r, projectID, res)
}

func (h *Handler) HandleMemberAdd(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderMutationError(w, r, "#members-errors", fmt.Errorf("invalid form data"))
		return
	}
	userID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		renderMutationError(w, r, "#members-errors", fmt.Errorf("select a user to add"))
		return
	}

	api := h.client(r)
	res := h.membersPanel(r, projectID)
	err = res.Mutate(func(ctx context.Context) error {
		return api.AddMember(ctx, projectID, userID)
	})
	if err != nil {
		h.renderPanelError(w, r, "#members-errors", err)
		return
	}
	h.renderMembersSection(w, r, projectID, res)
}

func (h *Handler) HandleMemberRemove(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	userID, ok := urlID(r, "userID")
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	api := h.client(r)
	res := h.membersPanel(r, projectID)
	err := res.Mutate(func(ctx context.Context) error {
		return api.RemoveMember(ctx, projectID, userID)
	})
	if err != nil {
		// A failed mutation issues no reload, so a rejected removal
		// leaves the member visible behind the error banner.
		h.renderPanelError(w, r, "#members-errors", err)
		return
	}
	h.renderMembersSection(w, r, projectID, res)
}

// renderMembersSection renders the panel from the controller's state
// after a successful mutation has reloaded it.
func (h *Handler) renderMembersSection(w http.ResponseWriter, r *http.Request, projectID int64, res *controller.Resource[memberPanel]) {
	sess := middleware.GetSession(r)

	panel, err := res.Data()
	if err != nil {
		renderMutationError(w, r, "#members-errors", err)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	pages.MembersSection(projectID, panel.Members, candidateUsers(panel.Users, panel.Members),
		h.policy.Allowed(policy.ActionMemberManage, sess.Role), "", csrfToken(r)).Render(r.Context(), w)
}
