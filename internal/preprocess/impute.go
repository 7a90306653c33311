package preprocess

import (
	"github.com/qmlgo/qheart/internal/domain"
	"github.com/qmlgo/qheart/pkg/formulas"
)

// MedianImputer replaces a sentinel value in one column with the median of
// the column's non-sentinel training values. The median is computed once on
// Fit and reused for any held-out data so evaluation never leaks test
// statistics.
type MedianImputer struct {
	Column   int     `msgpack:"column"`
	Sentinel float64 `msgpack:"sentinel"`
	Median   float64 `msgpack:"median"`
	fitted   bool
}

// NewCholesterolImputer builds the imputer for the cholesterol column,
// where 0 marks a missing measurement.
func NewCholesterolImputer() *MedianImputer {
	return &MedianImputer{Column: CholesterolColumn, Sentinel: 0}
}

// Fit computes the replacement median from the training matrix
func (m *MedianImputer) Fit(X [][]float64) error {
	var observed []float64
	for _, row := range X {
		if row[m.Column] != m.Sentinel {
			observed = append(observed, row[m.Column])
		}
	}
	if len(observed) == 0 {
		return domain.NewFitError("imputer", "all training values are missing, cannot compute median", nil)
	}
	m.Median = formulas.Median(observed)
	m.fitted = true
	return nil
}

// Transform returns a copy of X with sentinel entries replaced by the
// fitted median. The input is not modified.
func (m *MedianImputer) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		r := make([]float64, len(row))
		copy(r, row)
		if m.fitted && r[m.Column] == m.Sentinel {
			r[m.Column] = m.Median
		}
		out[i] = r
	}
	return out
}
