package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/landing/internal/page"
)

// Config holds server configuration.
type Config struct {
	Port     int
	Dir      string // directory with the built page and assets
	AllowAll bool   // allow all CORS origins
}

// Server serves the page. The index is rendered live on every request so
// edits to the content document show up without a rebuild; everything else
// comes from the output directory.
type Server struct {
	cfg        Config
	pages      *page.Bootstrapper
	shell      string
	reload     http.Handler
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. reload may be nil, in which case /ws/reload is not
// registered.
func New(cfg Config, pages *page.Bootstrapper, shell string, reload http.Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		pages:  pages,
		shell:  shell,
		reload: reload,
		logger: logger.Named("server"),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The reload socket is long lived and stays outside the timeout.
	if s.reload != nil {
		r.Get("/ws/reload", s.reload.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Health check
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Get("/", s.handleIndex)
		r.Get("/index.html", s.handleIndex)

		// Static files (must be registered after the page routes).
		if s.cfg.Dir != "" {
			r.Handle("/*", http.FileServer(http.Dir(s.cfg.Dir)))
		}
	})

	return r
}

// handleIndex renders the shell against freshly loaded content.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, _, err := s.pages.RenderPage(r.Context(), strings.NewReader(s.shell))
	if err != nil {
		status := http.StatusInternalServerError
		var se *page.StageError
		if errors.As(err, &se) && se.Stage == page.StageLoad {
			status = http.StatusBadGateway
		}
		writeError(w, status, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(html)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
