package svm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmlgo/qheart/internal/domain"
)

// Two well-separated clusters around (0,0) and (4,4).
var (
	separableX = [][]float64{
		{0, 0}, {0.5, 0}, {0, 0.5}, {0.5, 0.5},
		{4, 4}, {4.5, 4}, {4, 4.5}, {4.5, 4.5},
	}
	separableY = []int{0, 0, 0, 0, 1, 1, 1, 1}
)

func TestClassifierLinearSeparable(t *testing.T) {
	clf := NewClassifier(LinearKernel{}, 1.0, 42)
	require.NoError(t, clf.Fit(separableX, separableY))

	pred := clf.PredictBatch(separableX)
	assert.Equal(t, separableY, pred)

	// Points deep inside each cluster classify correctly too.
	assert.Equal(t, 0, clf.Predict([]float64{0.2, 0.2}))
	assert.Equal(t, 1, clf.Predict([]float64{4.2, 4.2}))
}

func TestClassifierRBFSeparable(t *testing.T) {
	clf := NewClassifier(RBFKernel{Gamma: 0.5}, 1.0, 42)
	require.NoError(t, clf.Fit(separableX, separableY))

	assert.Equal(t, separableY, clf.PredictBatch(separableX))
	assert.Positive(t, clf.SupportVectorCount())
}

func TestClassifierDecisionSign(t *testing.T) {
	clf := NewClassifier(LinearKernel{}, 1.0, 42)
	require.NoError(t, clf.Fit(separableX, separableY))

	assert.Negative(t, clf.Decision([]float64{0, 0}))
	assert.Positive(t, clf.Decision([]float64{4.5, 4.5}))
}

func TestClassifierDeterministic(t *testing.T) {
	a := NewClassifier(LinearKernel{}, 1.0, 42)
	require.NoError(t, a.Fit(separableX, separableY))
	b := NewClassifier(LinearKernel{}, 1.0, 42)
	require.NoError(t, b.Fit(separableX, separableY))

	alphaA, biasA := a.Snapshot()
	alphaB, biasB := b.Snapshot()
	assert.Equal(t, alphaA, alphaB)
	assert.Equal(t, biasA, biasB)
}

func TestClassifierDegenerateLabels(t *testing.T) {
	clf := NewClassifier(LinearKernel{}, 1.0, 42)

	var fitErr *domain.FitError

	err := clf.Fit(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.As(err, &fitErr))

	err = clf.Fit([][]float64{{1}, {2}}, []int{1, 1})
	require.Error(t, err)
	assert.True(t, errors.As(err, &fitErr))
}

func TestGramClassifierMatchesExplicitKernel(t *testing.T) {
	kernel := RBFKernel{Gamma: 0.5}

	explicit := NewClassifier(kernel, 1.0, 42)
	require.NoError(t, explicit.Fit(separableX, separableY))

	precomputed := NewGramClassifier(1.0, 42)
	require.NoError(t, precomputed.Fit(Gram(kernel, separableX), separableY))

	alphaE, biasE := explicit.Snapshot()
	alphaP, biasP := precomputed.Snapshot()
	assert.InDeltaSlice(t, alphaE, alphaP, 1e-12)
	assert.InDelta(t, biasE, biasP, 1e-12)

	// Predicting via kernel rows matches direct evaluation.
	test := [][]float64{{0.1, 0.3}, {4.4, 3.9}}
	for i, x := range test {
		k := make([]float64, len(separableX))
		for j, sv := range separableX {
			k[j] = kernel.Eval(x, sv)
		}
		assert.Equal(t, explicit.Predict(test[i]), precomputed.Predict(k))
	}
}
