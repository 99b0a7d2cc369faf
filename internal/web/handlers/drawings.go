package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/good-yellow-bee/siteboard/internal/backend"
	"github.com/good-yellow-bee/siteboard/internal/controller"
	"github.com/good-yellow-bee/siteboard/internal/models"
	"github.com/good-yellow-bee/siteboard/internal/policy"
	"github.com/good-yellow-bee/siteboard/internal/web/middleware"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/pages"
)

const maxUploadBytes = 64 << 20

// drawingsPanel returns the session's controller for a project's
// drawings, creating it on first use.
func (h *Handler) drawingsPanel(r *http.Request, projectID int64) *controller.Resource[[]*models.Drawing] {
	sess := middleware.GetSession(r)
	api := h.client(r)
	return h.panels.drawingsFor(panelKey(sess.ID, projectID), func(ctx context.Context) ([]*models.Drawing, error) {
		return api.ListDrawings(ctx, projectID)
	})
}

// ShowDrawingsSection serves the drawings panel as an HTMX partial.
func (h *Handler) ShowDrawingsSection(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	res := h.drawingsPanel(r, projectID)
	if err := res.Load(); err != nil {
		renderMutationError(w, r, "#drawings-errors", err)
		return
	}
	h.renderDrawingsSection(w, r, projectID, res)
}

func (h *Handler) HandleDrawingUpload(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlID(r, "projectID")
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		renderMutationError(w, r, "#drawings-errors", fmt.Errorf("upload too large or malformed"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		renderMutationError(w, r, "#drawings-errors", fmt.Errorf("a file is required"))
		return
	}
	defer file.Close()
	description := r.FormValue("description")

	// The multipart part is consumed inside Mutate, which may outlive
	// the request context; buffer it first.
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		renderMutationError(w, r, "#drawings-errors", fmt.Errorf("read upload: %w", err))
		return
	}

	api := h.client(r)
	res := h.drawingsPanel(r, projectID)
	err = res.Mutate(func(ctx context.Context) error {
		_, err := api.UploadDrawing(ctx, projectID, header.Filename, &buf, description)
		return err
	})
	if err != nil {
		h.renderPanelError(w, r, "#drawings-errors", err)
		return
	}
	h.renderDrawingsSection(w, r, projectID, res)
}

func (h *Handler) HandleDrawingUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "drawingID")
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderMutationError(w, r, "#drawings-errors", fmt.Errorf("invalid form data"))
		return
	}

	req := backend.UpdateDrawingRequest{
		Description: r.FormValue("description"),
		Revision:    r.FormValue("revision"),
		Discipline:  r.FormValue("discipline"),
		Status:      models.DrawingStatus(r.FormValue("status")),
		DrawingDate: r.FormValue("drawing_date"),
		Author:      r.FormValue("author"),
	}

	// The project id is needed up front to pick the controller; the
	// update response would arrive too late.
	api := h.client(r)
	projectID, perr := strconv.ParseInt(r.FormValue("project_id"), 10, 64)
	if perr != nil || projectID <= 0 {
		renderMutationError(w, r, "#drawings-errors", fmt.Errorf("invalid project"))
		return
	}

	res := h.drawingsPanel(r, projectID)
	err := res.Mutate(func(ctx context.Context) error {
		_, err := api.UpdateDrawing(ctx, id, req)
		return err
	})
	if err != nil {
		h.renderPanelError(w, r, "#drawings-errors", err)
		return
	}
	h.renderDrawingsSection(w, r, projectID, res)
}

func (h *Handler) HandleDrawingDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "drawingID")
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderMutationError(w, r, "#drawings-errors", fmt.Errorf("invalid form data"))
		return
	}
	projectID, err := strconv.ParseInt(r.FormValue("project_id"), 10, 64)
	if err != nil || projectID <= 0 {
		renderMutationError(w, r, "#drawings-errors", fmt.Errorf("invalid project"))
		return
	}

	api := h.client(r)
	res := h.drawingsPanel(r, projectID)
	err = res.Mutate(func(ctx context.Context) error {
		return api.DeleteDrawing(ctx, id)
	})
	if err != nil {
		h.renderPanelError(w, r, "#drawings-errors", err)
		return
	}
	h.renderDrawingsSection(w, r, projectID, res)
}

// HandleDrawingDownload proxies the file body from the backend so the
// browser never needs the bearer token.
func (h *Handler) HandleDrawingDownload(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "drawingID")
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	dl, err := h.client(r).DownloadDrawing(r.Context(), id)
	if err != nil {
		if backend.IsNotFound(err) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		http.Error(w, backend.Detail(err), http.StatusBadGateway)
		return
	}
	defer dl.Body.Close()

	if dl.ContentType != "" {
		w.Header().Set("Content-Type", dl.ContentType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	if dl.Filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.Filename))
	}
	if dl.Length > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(dl.Length, 10))
	}
	io.Copy(w, dl.Body)
}

// renderPanelError maps controller lifecycle errors to user-facing
// messages and leaves the panel untouched.
func (h *Handler) renderPanelError(w http.ResponseWriter, r *http.Request, target string, err error) {
	switch {
	case errors.Is(err, controller.ErrInFlight):
		renderMutationError(w, r, target, fmt.Errorf("another change is still in progress"))
	case errors.Is(err, controller.ErrClosed):
		renderMutationError(w, r, target, fmt.Errorf("session ended, sign in again"))
	default:
		renderMutationError(w, r, target, err)
	}
}

// renderDrawingsSection renders the panel from the controller's state
// after a successful mutation has reloaded it.
func (h *Handler) renderDrawingsSection(w http.ResponseWriter, r *http.Request, projectID int64, res *controller.Resource[[]*models.Drawing]) {
	sess := middleware.GetSession(r)

	drawings, err := res.Data()
	if err != nil {
		renderMutationError(w, r, "#drawings-errors", err)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	pages.DrawingsSection(projectID, drawings,
		h.policy.Allowed(policy.ActionDrawingManage, sess.Role), "", csrfToken(r)).Render(r.Context(), w)
}
