package svm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearKernel(t *testing.T) {
	k := LinearKernel{}
	assert.Equal(t, 11.0, k.Eval([]float64{1, 2}, []float64{3, 4}))
	assert.Equal(t, "linear", k.Name())
}

func TestRBFKernel(t *testing.T) {
	k := RBFKernel{Gamma: 0.5}

	assert.Equal(t, 1.0, k.Eval([]float64{1, 2}, []float64{1, 2}))
	// ‖a-b‖² = 8, exp(-0.5·8) = exp(-4)
	assert.InDelta(t, math.Exp(-4), k.Eval([]float64{0, 0}, []float64{2, 2}), 1e-12)
	assert.Equal(t, "rbf", k.Name())
}

func TestScaleGamma(t *testing.T) {
	// Pooled entries {0, 2, 2, 0}: mean 1, variance 1, d=2 gives γ = 0.5
	X := [][]float64{{0, 2}, {2, 0}}
	assert.InDelta(t, 0.5, ScaleGamma(X), 1e-12)
}

func TestScaleGammaDegenerate(t *testing.T) {
	assert.Equal(t, 1.0, ScaleGamma(nil))
	assert.Equal(t, 1.0, ScaleGamma([][]float64{{3, 3}, {3, 3}}))
}

func TestGram(t *testing.T) {
	X := [][]float64{{1, 0}, {0, 1}, {1, 1}}
	g := Gram(LinearKernel{}, X)

	n, _ := g.Dims()
	assert.Equal(t, 3, n)
	assert.Equal(t, 1.0, g.At(0, 0))
	assert.Equal(t, 0.0, g.At(0, 1))
	assert.Equal(t, 1.0, g.At(0, 2))
	assert.Equal(t, g.At(2, 1), g.At(1, 2))
	assert.Equal(t, 2.0, g.At(2, 2))
}
