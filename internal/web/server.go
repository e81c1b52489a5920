// Package web exposes the scan and onboarding flows over HTTP.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/readmelens/readmelens/internal/lens"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the HTTP surface: a home page with a scan form and recent
// scans, the scan endpoint, and the onboarding-doc endpoint.
type Server struct {
	router *chi.Mux
	svc    *lens.Service
	tmpl   *template.Template
	logger *slog.Logger
}

// NewServer builds the server, parsing the embedded page templates and
// wiring all routes.
func NewServer(svc *lens.Service, logger *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		router: chi.NewRouter(),
		svc:    svc,
		tmpl:   tmpl,
		logger: logger,
	}
	s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(s.logRequests)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	})

	s.router.Get("/", s.handleHome)
	s.router.Get("/about", s.handleAbout)
	s.router.Post("/scan", s.handleScan)
	s.router.Get("/onboarding/{owner}/{repo}", s.handleOnboarding)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}
