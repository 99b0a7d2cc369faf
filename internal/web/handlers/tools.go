package handlers

import (
	"net/http"

	"github.com/good-yellow-bee/siteboard/internal/backend"
	"github.com/good-yellow-bee/siteboard/internal/web/middleware"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/pages"
)

func (h *Handler) ShowTool(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	id, ok := urlID(r, "toolID")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		pages.ToolNotFound(sess, csrfToken(r), nonce(r)).Render(r.Context(), w)
		return
	}

	tool, err := h.client(r).GetTool(r.Context(), id)
	if err != nil {
		if backend.IsNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			pages.ToolNotFound(sess, csrfToken(r), nonce(r)).Render(r.Context(), w)
			return
		}
		http.Error(w, backend.Detail(err), http.StatusBadGateway)
		return
	}
	pages.ToolDetail(sess, tool, csrfToken(r), nonce(r)).Render(r.Context(), w)
}
