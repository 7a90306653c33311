// Package svm implements a kernel support vector classifier trained with
// sequential minimal optimization. It provides the kernel-fit capability the
// evaluators build on: the classical path supplies an explicit kernel
// function, the quantum path supplies a precomputed Gram matrix.
package svm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Kernel is a similarity function between two feature vectors
type Kernel interface {
	Eval(a, b []float64) float64
	Name() string
}

// LinearKernel computes the plain dot product
type LinearKernel struct{}

// Eval returns a·b
func (LinearKernel) Eval(a, b []float64) float64 { return floats.Dot(a, b) }

// Name returns the kernel identifier
func (LinearKernel) Name() string { return "linear" }

// RBFKernel computes exp(-γ‖a-b‖²)
type RBFKernel struct {
	Gamma float64
}

// Eval returns the Gaussian similarity of a and b
func (k RBFKernel) Eval(a, b []float64) float64 {
	var sq float64
	for i := range a {
		d := a[i] - b[i]
		sq += d * d
	}
	return math.Exp(-k.Gamma * sq)
}

// Name returns the kernel identifier
func (k RBFKernel) Name() string { return "rbf" }

// ScaleGamma returns the γ scale heuristic 1/(d·Var(X)), where Var(X) is
// the variance of all matrix entries pooled. Matches the common "scale"
// default so RBF behaves sensibly on standardized features.
func ScaleGamma(X [][]float64) float64 {
	if len(X) == 0 || len(X[0]) == 0 {
		return 1
	}
	d := len(X[0])
	var all []float64
	for _, row := range X {
		all = append(all, row...)
	}
	mean := floats.Sum(all) / float64(len(all))
	var variance float64
	for _, v := range all {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(all))
	if variance == 0 {
		return 1
	}
	return 1 / (float64(d) * variance)
}

// Gram computes the symmetric kernel matrix over the rows of X
func Gram(k Kernel, X [][]float64) *mat.SymDense {
	n := len(X)
	g := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			g.SetSym(i, j, k.Eval(X[i], X[j]))
		}
	}
	return g
}
