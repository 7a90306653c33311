// Package main is the entry point for the qheart benchmark service.
// It trains classical and quantum-kernel support vector machines on the
// heart-disease dataset and compares their test-set performance.
//
// Two modes are supported:
//   - batch (default): run the experiment once, print a comparison table,
//     persist the run, and exit
//   - serve (-serve):  expose the HTTP API, stream run events over
//     WebSocket, and optionally re-run the experiment on a cron schedule
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/qmlgo/qheart/internal/config"
	"github.com/qmlgo/qheart/internal/database"
	"github.com/qmlgo/qheart/internal/dataset"
	"github.com/qmlgo/qheart/internal/evaluation"
	"github.com/qmlgo/qheart/internal/events"
	"github.com/qmlgo/qheart/internal/report"
	"github.com/qmlgo/qheart/internal/results"
	"github.com/qmlgo/qheart/internal/scheduler"
	"github.com/qmlgo/qheart/internal/server"
	"github.com/qmlgo/qheart/pkg/logger"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP server instead of a one-shot experiment")
	flag.Parse()

	// Load configuration first to get the log level.
	cfg, err := config.Load()
	if err != nil {
		// Use a fallback logger so the configuration error is still logged.
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting qheart")

	db, err := database.New(database.Config{
		Path: filepath.Join(cfg.DataDir, "runs.db"),
		Name: "runs",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open results database")
	}
	defer db.Close()

	repo, err := results.NewRepository(db.Conn(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize results repository")
	}

	source := dataset.NewSource(cfg.DatasetPath)
	bus := events.NewBus(log)
	experiment := evaluation.NewService(cfg, source, repo, bus, log)

	if !*serve {
		runBatch(experiment, log)
		return
	}

	srv := server.New(cfg, repo, experiment, bus, log)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Port).Msg("Server started")

	// Scheduled re-evaluation is opt-in via QHEART_SCHEDULE.
	var sched *scheduler.Scheduler
	if cfg.Schedule != "" {
		sched = scheduler.New(log)
		job := scheduler.NewExperimentJob(func(ctx context.Context) error {
			_, err := experiment.Run(ctx)
			return err
		})
		if err := sched.AddJob(cfg.Schedule, job); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Schedule).Msg("Invalid experiment schedule")
		}
		sched.Start()

		// Produce a baseline run right away rather than waiting for the
		// first cron fire.
		go func() {
			if err := sched.RunNow(job); err != nil {
				log.Error().Err(err).Msg("Initial experiment run failed")
			}
		}()
	}

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")

	if sched != nil {
		sched.Stop()
	}

	// In-flight requests get up to 10 seconds to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// runBatch executes a single experiment, prints the comparison table and exits.
func runBatch(experiment *evaluation.Service, log zerolog.Logger) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	run, err := experiment.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Experiment failed")
		os.Exit(1)
	}

	fmt.Print(report.Table(run))
}
