// Package results persists completed experiment runs: one row per run plus
// one row per model/variant result, with a msgpack snapshot of the fitted
// parameters for auditability.
package results

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/qmlgo/qheart/internal/domain"
	"github.com/qmlgo/qheart/internal/preprocess"
)

// TrainedModel captures the dual solution of one fitted classifier
type TrainedModel struct {
	Model   string    `msgpack:"model"`
	Variant string    `msgpack:"variant"`
	Alpha   []float64 `msgpack:"alpha"`
	Bias    float64   `msgpack:"bias"`
}

// Snapshot bundles everything needed to reproduce a run's transforms and
// inspect its fitted models. Stored as a msgpack blob alongside the run.
type Snapshot struct {
	Models   []TrainedModel             `msgpack:"models"`
	Imputer  *preprocess.MedianImputer  `msgpack:"imputer"`
	Standard *preprocess.StandardScaler `msgpack:"standard_scaler"`
	MinMax   *preprocess.MinMaxScaler   `msgpack:"minmax_scaler"`
}

// Encode serializes the snapshot to msgpack
func (s *Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

// DecodeSnapshot deserializes a stored snapshot blob
func DecodeSnapshot(blob []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(blob, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Run is one completed (or failed) experiment run
type Run struct {
	ID           string                    `json:"id"`
	CreatedAt    time.Time                 `json:"created_at"`
	DatasetRows  int                       `json:"dataset_rows"`
	Seed         int64                     `json:"seed"`
	Shots        int                       `json:"shots"`
	TestFraction float64                   `json:"test_fraction"`
	DurationMS   int64                     `json:"duration_ms"`
	Results      []domain.EvaluationResult `json:"results"`
	Snapshot     []byte                    `json:"-"`
}
