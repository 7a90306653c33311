package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/qmlgo/qheart/internal/results"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "qheart",
	})
}

// handleSystemHealth reports host resource usage
func (s *Server) handleSystemHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{}

	if vm, err := mem.VirtualMemory(); err == nil {
		response["memory_used_percent"] = vm.UsedPercent
		response["memory_total_mb"] = vm.Total / 1024 / 1024
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		response["cpu_percent"] = percents[0]
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleListRuns returns recent runs, newest first
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	runs, err := s.repo.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleLatestRun returns the most recent run with its results
func (s *Server) handleLatestRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.repo.Latest(r.Context())
	if errors.Is(err, results.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

// handleGetRun returns one run by id
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.repo.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, results.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

// handleTriggerRun starts an experiment in the background. Progress and
// completion arrive on the run stream; the response only acknowledges the
// start.
func (s *Server) handleTriggerRun(w http.ResponseWriter, r *http.Request) {
	// Detached from the request context: the run should survive the client
	// disconnecting.
	ctx := context.WithoutCancel(r.Context())
	go func() {
		if _, err := s.experiment.Run(ctx); err != nil {
			s.log.Error().Err(err).Msg("Triggered run failed")
		}
	}()

	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}
