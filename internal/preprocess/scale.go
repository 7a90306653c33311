package preprocess

import "github.com/qmlgo/qheart/pkg/formulas"

// StandardScaler scales each column to zero mean and unit variance using
// statistics fit on training data only. A zero-variance training column is
// treated as constant and scales to all zeros rather than dividing by zero.
type StandardScaler struct {
	Mean []float64 `msgpack:"mean"`
	Std  []float64 `msgpack:"std"`
}

// Fit computes per-column mean and population standard deviation
func (s *StandardScaler) Fit(X [][]float64) {
	cols := len(X[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)
	for j := 0; j < cols; j++ {
		col := column(X, j)
		s.Mean[j] = formulas.Mean(col)
		s.Std[j] = formulas.StdDev(col)
	}
}

// Transform standardizes X with the fitted parameters, returning a new matrix
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		r := make([]float64, len(row))
		for j, v := range row {
			if s.Std[j] != 0 {
				r[j] = (v - s.Mean[j]) / s.Std[j]
			}
			// constant training column stays 0
		}
		out[i] = r
	}
	return out
}

// MinMaxScaler scales each column into [0, RangeMax] using the training
// range. Out-of-range test values extrapolate beyond the bounds rather than
// clamping, so a test value above the training maximum maps above RangeMax.
type MinMaxScaler struct {
	Min      []float64 `msgpack:"min"`
	Max      []float64 `msgpack:"max"`
	RangeMax float64   `msgpack:"range_max"` // 1 for unit range, math.Pi for rotation angles
}

// NewMinMaxScaler creates a scaler targeting [0, rangeMax]
func NewMinMaxScaler(rangeMax float64) *MinMaxScaler {
	return &MinMaxScaler{RangeMax: rangeMax}
}

// Fit records per-column training minima and maxima
func (s *MinMaxScaler) Fit(X [][]float64) {
	cols := len(X[0])
	s.Min = make([]float64, cols)
	s.Max = make([]float64, cols)
	for j := 0; j < cols; j++ {
		s.Min[j], s.Max[j] = formulas.MinMax(column(X, j))
	}
}

// Transform rescales X with the fitted range, returning a new matrix.
// A constant training column scales to all zeros.
func (s *MinMaxScaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		r := make([]float64, len(row))
		for j, v := range row {
			if span := s.Max[j] - s.Min[j]; span != 0 {
				r[j] = (v - s.Min[j]) / span * s.RangeMax
			}
		}
		out[i] = r
	}
	return out
}

func column(X [][]float64, j int) []float64 {
	col := make([]float64, len(X))
	for i := range X {
		col[i] = X[i][j]
	}
	return col
}
