package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/qmlgo/qheart/internal/domain"
)

// ErrNotFound is returned when a requested run does not exist
var ErrNotFound = errors.New("run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	created_at    INTEGER NOT NULL,
	dataset_rows  INTEGER NOT NULL,
	seed          INTEGER NOT NULL,
	shots         INTEGER NOT NULL,
	test_fraction REAL NOT NULL,
	duration_ms   INTEGER NOT NULL,
	snapshot      BLOB
);

CREATE TABLE IF NOT EXISTS run_results (
	run_id    TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	model     TEXT NOT NULL,
	variant   TEXT NOT NULL,
	accuracy  REAL NOT NULL,
	precision REAL NOT NULL,
	recall    REAL NOT NULL,
	f1        REAL NOT NULL,
	PRIMARY KEY (run_id, model, variant)
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`

// Repository handles run persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a run repository and ensures the schema exists
func NewRepository(db *sql.DB, log zerolog.Logger) (*Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize results schema: %w", err)
	}
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "results").Logger(),
	}, nil
}

// NewRunID returns a fresh run identifier
func NewRunID() string { return uuid.NewString() }

// Save inserts a run and its per-variant results in one transaction
func (r *Repository) Save(ctx context.Context, run *Run) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, dataset_rows, seed, shots, test_fraction, duration_ms, snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.Unix(), run.DatasetRows, run.Seed, run.Shots,
		run.TestFraction, run.DurationMS, run.Snapshot,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}

	for _, res := range run.Results {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_results (run_id, model, variant, accuracy, precision, recall, f1)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, res.Model, res.Variant, res.Accuracy, res.Precision, res.Recall, res.F1,
		)
		if err != nil {
			return fmt.Errorf("failed to insert result %s/%s: %w", res.Model, res.Variant, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", run.ID, err)
	}

	r.log.Debug().Str("run_id", run.ID).Int("results", len(run.Results)).Msg("Run saved")
	return nil
}

// Get loads one run with its results
func (r *Repository) Get(ctx context.Context, id string) (*Run, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, dataset_rows, seed, shots, test_fraction, duration_ms, snapshot
		FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadResults(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// Latest loads the most recent run with its results
func (r *Repository) Latest(ctx context.Context) (*Run, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, dataset_rows, seed, shots, test_fraction, duration_ms, snapshot
		FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadResults(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// List returns recent runs without snapshots or results, newest first
func (r *Repository) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, dataset_rows, seed, shots, test_fraction, duration_ms
		FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt int64
		if err := rows.Scan(&run.ID, &createdAt, &run.DatasetRows, &run.Seed,
			&run.Shots, &run.TestFraction, &run.DurationMS); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		run.CreatedAt = time.Unix(createdAt, 0).UTC()
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *Repository) loadResults(ctx context.Context, run *Run) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model, variant, accuracy, precision, recall, f1
		FROM run_results WHERE run_id = ? ORDER BY model, variant`, run.ID)
	if err != nil {
		return fmt.Errorf("failed to load results for run %s: %w", run.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var res domain.EvaluationResult
		if err := rows.Scan(&res.Model, &res.Variant, &res.Accuracy,
			&res.Precision, &res.Recall, &res.F1); err != nil {
			return fmt.Errorf("failed to scan result row: %w", err)
		}
		run.Results = append(run.Results, res)
	}
	return rows.Err()
}

func scanRun(row *sql.Row) (*Run, error) {
	var run Run
	var createdAt int64
	err := row.Scan(&run.ID, &createdAt, &run.DatasetRows, &run.Seed,
		&run.Shots, &run.TestFraction, &run.DurationMS, &run.Snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}
	run.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &run, nil
}
