package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/qmlgo/qheart/internal/config"
	"github.com/qmlgo/qheart/internal/dataset"
	"github.com/qmlgo/qheart/internal/events"
	"github.com/qmlgo/qheart/internal/preprocess"
	"github.com/qmlgo/qheart/internal/results"
)

// Service orchestrates one full experiment: load, preprocess, evaluate
// classical and quantum paths, persist and publish the outcome.
// Evaluators receive independent scaled copies of the data; nothing is
// shared between them beyond the split assignment.
type Service struct {
	cfg    *config.Config
	source dataset.Source
	repo   *results.Repository // nil disables persistence
	bus    *events.Bus         // nil disables events
	log    zerolog.Logger
}

// NewService creates an experiment service
func NewService(cfg *config.Config, source dataset.Source, repo *results.Repository, bus *events.Bus, log zerolog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		source: source,
		repo:   repo,
		bus:    bus,
		log:    log.With().Str("component", "experiment").Logger(),
	}
}

// Run executes the full pipeline once. Any failure aborts the run: no
// partial results are persisted and no retry happens.
func (s *Service) Run(ctx context.Context) (*results.Run, error) {
	runID := results.NewRunID()
	started := time.Now()
	s.emit(events.RunStarted, map[string]any{"run_id": runID})

	run, err := s.run(ctx, runID, started)
	if err != nil {
		s.emit(events.RunFailed, map[string]any{"run_id": runID, "error": err.Error()})
		return nil, err
	}

	s.emit(events.RunCompleted, map[string]any{
		"run_id":      runID,
		"results":     len(run.Results),
		"duration_ms": run.DurationMS,
	})
	return run, nil
}

func (s *Service) run(ctx context.Context, runID string, started time.Time) (*results.Run, error) {
	ds, err := dataset.Load(ctx, s.source)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("rows", ds.Len()).Msg("Dataset loaded")

	exp := s.cfg.Experiment
	prepared, err := preprocess.Prepare(ds, preprocess.Options{
		TestFraction: exp.TestFraction,
		Seed:         exp.Seed,
		Stratify:     exp.Stratify,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Int("train_rows", len(prepared.Classical.XTrain)).
		Int("test_rows", len(prepared.Classical.XTest)).
		Float64("cholesterol_median", prepared.Imputer.Median).
		Msg("Preprocessing complete")

	classResults, classModels, err := NewClassicalEvaluator(exp, s.log).Evaluate(prepared.Classical)
	if err != nil {
		return nil, err
	}
	s.emit(events.EvaluatorCompleted, map[string]any{
		"run_id": runID, "evaluator": "classical", "results": len(classResults),
	})

	quantResults, quantModels, err := NewQuantumEvaluator(exp, s.log).Evaluate(prepared.Quantum)
	if err != nil {
		return nil, err
	}
	s.emit(events.EvaluatorCompleted, map[string]any{
		"run_id": runID, "evaluator": "quantum", "results": len(quantResults),
	})

	s.logResources()

	snapshot := &results.Snapshot{
		Models:   append(classModels, quantModels...),
		Imputer:  prepared.Imputer,
		Standard: prepared.Standard,
		MinMax:   prepared.MinMax,
	}
	blob, err := snapshot.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode run snapshot: %w", err)
	}

	run := &results.Run{
		ID:           runID,
		CreatedAt:    started.UTC(),
		DatasetRows:  ds.Len(),
		Seed:         exp.Seed,
		Shots:        exp.Shots,
		TestFraction: exp.TestFraction,
		DurationMS:   time.Since(started).Milliseconds(),
		Results:      append(classResults, quantResults...),
		Snapshot:     blob,
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, run); err != nil {
			return nil, err
		}
	}

	return run, nil
}

// logResources records a system resource snapshot after the heavy kernel
// computation. Statevector simulation is the memory-bound part of a run.
func (s *Service) logResources() {
	event := s.log.Info()
	if vm, err := mem.VirtualMemory(); err == nil {
		event = event.Float64("mem_used_percent", vm.UsedPercent)
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		event = event.Float64("cpu_percent", percents[0])
	}
	event.Msg("Resource usage after evaluation")
}

func (s *Service) emit(eventType events.EventType, data map[string]any) {
	if s.bus != nil {
		s.bus.Emit(eventType, "experiment", data)
	}
}
