// Package server serves the board editor over HTTP.
//
// The page at / draws the board as inline SVG and posts pointer events to
// the /api endpoints; every response says whether the board needs
// redrawing. Each browser gets its own board, keyed by a session cookie.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hexrail/internal/config"
	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/io"
	"github.com/matzehuels/hexrail/pkg/observability"
	"github.com/matzehuels/hexrail/pkg/session"
)

const (
	cookieName      = "hexrail_session"
	cleanupInterval = time.Minute
	shutdownTimeout = 5 * time.Second
)

// Server is the HTTP editor.
type Server struct {
	cfg    *config.Config
	logger *log.Logger
	store  session.Store
	script *io.Script
	router chi.Router
}

// Option configures a [Server].
type Option func(*Server)

// WithStore replaces the default in-memory session store.
func WithStore(st session.Store) Option { return func(s *Server) { s.store = st } }

// WithScript makes every new session start from the board built by sc.
func WithScript(sc *io.Script) Option { return func(s *Server) { s.script = sc } }

// New builds a server from cfg.
func New(cfg *config.Config, logger *log.Logger, opts ...Option) *Server {
	s := &Server{cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = session.NewMemoryStore(cfg.Server.SessionTTL)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)

		r.Get("/", s.handleIndex)
		r.Get("/scene.svg", s.sceneHandler(formatSVG))
		r.Get("/scene.json", s.sceneHandler(formatJSON))
		r.Get("/scene.png", s.sceneHandler(formatPNG))

		r.Route("/api", func(r chi.Router) {
			r.Get("/state", s.handleState)
			r.Post("/move", s.handleMove)
			r.Post("/leave", s.handleLeave)
			r.Post("/click", s.handleClick)
			r.Post("/reset", s.handleReset)
		})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// newGrid returns the starting board of a session.
func (s *Server) newGrid() (*grid.Grid, error) {
	if s.script != nil {
		return s.script.Grid()
	}
	return s.cfg.NewGrid(), nil
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ms, ok := s.store.(*session.MemoryStore); ok {
		go ms.Run(ctx, cleanupInterval, func(n int) {
			observability.Session().OnSessionsExpired(ctx, n)
			s.logger.Debug("expired sessions removed", "count", n)
		})
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("serving editor", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
