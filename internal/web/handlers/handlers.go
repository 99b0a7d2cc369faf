// Package handlers contains the console's HTTP handlers. Every page
// and partial is rendered from live backend data; handlers never cache
// resource state between requests.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"

	"github.com/good-yellow-bee/siteboard/internal/backend"
	"github.com/good-yellow-bee/siteboard/internal/controller"
	"github.com/good-yellow-bee/siteboard/internal/models"
	"github.com/good-yellow-bee/siteboard/internal/policy"
	"github.com/good-yellow-bee/siteboard/internal/web/middleware"
	"github.com/good-yellow-bee/siteboard/internal/web/session"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/components"
)

type Handler struct {
	api      *backend.Client
	sessions *session.Store
	policy   *policy.Policy
	panels   *panelRegistry
}

func NewHandler(api *backend.Client, sessions *session.Store, p *policy.Policy) *Handler {
	if sessions == nil {
		sessions = session.NewStore(8 * time.Hour)
	}
	if p == nil {
		p = policy.Default()
	}
	h := &Handler{
		api:      api,
		sessions: sessions,
		policy:   p,
		panels:   newPanelRegistry(),
	}
	// Sessions leave the store by logout or by TTL expiry; either way
	// their panel controllers must go with them or the registry grows
	// without bound.
	sessions.OnEvict(h.panels.closeSession)
	return h
}

// memberPanel is the members section's view state: the team plus the
// full user list for the add picker.
type memberPanel struct {
	Members []*models.Member
	Users   []*models.User
}

// panelRegistry holds one live resource controller per session and
// panel. A mutation on a panel is rejected while another one is still
// in flight, and signing out closes the session's controllers so a
// slow backend response cannot write state afterwards.
type panelRegistry struct {
	mu       sync.Mutex
	drawings map[string]*controller.Resource[[]*models.Drawing]
	members  map[string]*controller.Resource[memberPanel]
}

func newPanelRegistry() *panelRegistry {
	return &panelRegistry{
		drawings: make(map[string]*controller.Resource[[]*models.Drawing]),
		members:  make(map[string]*controller.Resource[memberPanel]),
	}
}

func panelKey(sessionID string, projectID int64) string {
	return sessionID + "/" + strconv.FormatInt(projectID, 10)
}

func (p *panelRegistry) drawingsFor(key string, load controller.LoadFunc[[]*models.Drawing]) *controller.Resource[[]*models.Drawing] {
	p.mu.Lock()
	defer p.mu.Unlock()
	res, ok := p.drawings[key]
	if !ok {
		res = controller.New(context.Background(), load)
		p.drawings[key] = res
	}
	return res
}

func (p *panelRegistry) membersFor(key string, load controller.LoadFunc[memberPanel]) *controller.Resource[memberPanel] {
	p.mu.Lock()
	defer p.mu.Unlock()
	res, ok := p.members[key]
	if !ok {
		res = controller.New(context.Background(), load)
		p.members[key] = res
	}
	return res
}

// closeSession closes and drops every controller owned by a session.
func (p *panelRegistry) closeSession(sessionID string) {
	prefix := sessionID + "/"
	p.mu.Lock()
	defer p.mu.Unlock()
	for key, res := range p.drawings {
		if strings.HasPrefix(key, prefix) {
			res.Close()
			delete(p.drawings, key)
		}
	}
	for key, res := range p.members {
		if strings.HasPrefix(key, prefix) {
			res.Close()
			delete(p.members, key)
		}
	}
}

// client returns the backend client authenticated as the request's
// session, or the anonymous client when there is none.
func (h *Handler) client(r *http.Request) *backend.Client {
	if sess := middleware.GetSession(r); sess != nil {
		return h.api.WithToken(sess.Token)
	}
	return h.api
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func urlID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// renderMutationError reports a failed HTMX mutation without touching
// the section it came from. The alert is retargeted into the section's
// error slot so the existing rows stay on screen untouched.
func renderMutationError(w http.ResponseWriter, r *http.Request, target string, err error) {
	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("HX-Retarget", target)
	w.Header().Set("HX-Reswap", "innerHTML")
	components.Alert("error", backend.Detail(err)).Render(r.Context(), w)
}

func csrfToken(r *http.Request) string {
	return csrf.Token(r)
}

func nonce(r *http.Request) string {
	return middleware.GetCSPNonce(r.Context())
}
