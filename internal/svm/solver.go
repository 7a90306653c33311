package svm

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/qmlgo/qheart/internal/domain"
)

// Solver hyperparameters. Tolerance and pass budget follow the simplified
// SMO formulation; maxPasses bounds full sweeps without any alpha update.
const (
	defaultTol = 1e-3
	defaultEps = 1e-5
	maxPasses  = 5
	maxSweeps  = 10000 // hard sweep cap, exceeding it is non-convergence
)

// solution is the dual solution of the soft-margin problem
type solution struct {
	alpha []float64
	b     float64
}

// solveSMO runs sequential minimal optimization over a precomputed kernel
// matrix. y must be ±1. The rng drives the second-index choice, so a fixed
// seed makes training deterministic.
func solveSMO(K mat.Symmetric, y []float64, c float64, rng *rand.Rand) (*solution, error) {
	n := len(y)
	alpha := make([]float64, n)
	b := 0.0

	// f(i) = Σ_k α_k y_k K(k,i) + b
	decision := func(i int) float64 {
		sum := b
		for k := 0; k < n; k++ {
			if alpha[k] != 0 {
				sum += alpha[k] * y[k] * K.At(k, i)
			}
		}
		return sum
	}

	passes := 0
	sweeps := 0
	for passes < maxPasses {
		if sweeps++; sweeps > maxSweeps {
			return nil, domain.NewFitError("svm", "SMO did not converge within the sweep budget", nil)
		}

		changed := 0
		for i := 0; i < n; i++ {
			ei := decision(i) - y[i]
			if !(y[i]*ei < -defaultTol && alpha[i] < c) && !(y[i]*ei > defaultTol && alpha[i] > 0) {
				continue // KKT conditions hold at i
			}

			j := rng.Intn(n - 1)
			if j >= i {
				j++
			}
			ej := decision(j) - y[j]

			aiOld, ajOld := alpha[i], alpha[j]
			var lo, hi float64
			if y[i] != y[j] {
				lo = math.Max(0, ajOld-aiOld)
				hi = math.Min(c, c+ajOld-aiOld)
			} else {
				lo = math.Max(0, aiOld+ajOld-c)
				hi = math.Min(c, aiOld+ajOld)
			}
			if lo == hi {
				continue
			}

			eta := 2*K.At(i, j) - K.At(i, i) - K.At(j, j)
			if eta >= 0 {
				continue
			}

			aj := ajOld - y[j]*(ei-ej)/eta
			if aj > hi {
				aj = hi
			} else if aj < lo {
				aj = lo
			}
			if math.Abs(aj-ajOld) < defaultEps {
				continue
			}
			ai := aiOld + y[i]*y[j]*(ajOld-aj)

			b1 := b - ei - y[i]*(ai-aiOld)*K.At(i, i) - y[j]*(aj-ajOld)*K.At(i, j)
			b2 := b - ej - y[i]*(ai-aiOld)*K.At(i, j) - y[j]*(aj-ajOld)*K.At(j, j)
			switch {
			case ai > 0 && ai < c:
				b = b1
			case aj > 0 && aj < c:
				b = b2
			default:
				b = (b1 + b2) / 2
			}

			alpha[i], alpha[j] = ai, aj
			changed++
		}

		if changed == 0 {
			passes++
		} else {
			passes = 0
		}
	}

	return &solution{alpha: alpha, b: b}, nil
}

// signedLabels converts 0/1 labels to ±1, rejecting degenerate single-class
// training data.
func signedLabels(y []int) ([]float64, error) {
	if len(y) == 0 {
		return nil, domain.NewFitError("svm", "empty training set", nil)
	}
	signed := make([]float64, len(y))
	pos, neg := 0, 0
	for i, label := range y {
		if label == 1 {
			signed[i] = 1
			pos++
		} else {
			signed[i] = -1
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return nil, domain.NewFitError("svm", "training split contains a single class", nil)
	}
	return signed, nil
}
