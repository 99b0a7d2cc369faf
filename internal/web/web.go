// Package web serves the SiteBoard console.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/good-yellow-bee/siteboard/internal/backend"
	"github.com/good-yellow-bee/siteboard/internal/policy"
	"github.com/good-yellow-bee/siteboard/internal/web/handlers"
	"github.com/good-yellow-bee/siteboard/internal/web/middleware"
	"github.com/good-yellow-bee/siteboard/internal/web/session"
)

//go:embed static
var staticFS embed.FS

type Server struct {
	handler          *handlers.Handler
	sessions         *session.Store
	policy           *policy.Policy
	loginLimiter     *middleware.LoginLimiter
	csrfKey          []byte
	useSecureCookies bool
	verbose          bool
}

// Options configures the console server.
type Options struct {
	SessionTTL      time.Duration
	LoginsPerMinute int
	CSRFKey         string
	SecureCookies   bool
	Verbose         bool
}

// NewServer wires the console around a backend client and a policy.
func NewServer(api *backend.Client, p *policy.Policy, opts Options) *Server {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 8 * time.Hour
	}
	if opts.LoginsPerMinute <= 0 {
		opts.LoginsPerMinute = 10
	}
	if p == nil {
		p = policy.Default()
	}

	sessions := session.NewStore(opts.SessionTTL)
	return &Server{
		handler:          handlers.NewHandler(api, sessions, p),
		sessions:         sessions,
		policy:           p,
		loginLimiter:     middleware.NewLoginLimiter(opts.LoginsPerMinute),
		csrfKey:          []byte(opts.CSRFKey),
		useSecureCookies: opts.SecureCookies,
		verbose:          opts.Verbose,
	}
}

func (s *Server) StaticFS() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Unrecoverable init error - server cannot function without static assets
		panic(fmt.Sprintf("failed to create static FS: %v", err))
	}
	return http.FileServer(http.FS(sub))
}

func (s *Server) Sessions() *session.Store {
	return s.sessions
}

func (s *Server) Handler() *handlers.Handler {
	return s.handler
}
