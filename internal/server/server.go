// Package server provides the HTTP server and routing for serve mode.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/qmlgo/qheart/internal/config"
	"github.com/qmlgo/qheart/internal/evaluation"
	"github.com/qmlgo/qheart/internal/events"
	"github.com/qmlgo/qheart/internal/results"
)

// Server exposes run history and experiment control over HTTP
type Server struct {
	cfg        *config.Config
	repo       *results.Repository
	experiment *evaluation.Service
	bus        *events.Bus
	router     *chi.Mux
	server     *http.Server
	log        zerolog.Logger
}

// New creates the HTTP server with routes and middleware configured
func New(cfg *config.Config, repo *results.Repository, experiment *evaluation.Service, bus *events.Bus, log zerolog.Logger) *Server {
	s := &Server{
		cfg:        cfg,
		repo:       repo,
		experiment: experiment,
		bus:        bus,
		router:     chi.NewRouter(),
		log:        log.With().Str("component", "server").Logger(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/system/health", s.handleSystemHealth)

	s.router.Route("/api/runs", func(r chi.Router) {
		r.Get("/", s.handleListRuns)
		r.Get("/latest", s.handleLatestRun)
		r.Get("/stream", s.handleRunStream)
		r.Get("/{id}", s.handleGetRun)
	})

	s.router.Post("/api/experiments/run", s.handleTriggerRun)
}

// Start begins serving; blocks until the listener fails or is shut down
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response with the error kind surfaced
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
