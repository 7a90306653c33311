package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-12)
	assert.Equal(t, 0.0, Mean(nil))
}

func TestStdDev(t *testing.T) {
	// Population std dev of {2, 4, 4, 4, 5, 5, 7, 9} is exactly 2.
	assert.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
	assert.Equal(t, 0.0, StdDev([]float64{5, 5, 5}))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{"odd length", []float64{240, 200, 220}, 220},
		{"even length", []float64{1, 2, 3, 4}, 2.5},
		{"single value", []float64{7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Median(tt.data), 1e-12)
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	data := []float64{3, 1, 2}
	Median(data)
	assert.Equal(t, []float64{3, 1, 2}, data)
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, -1, 7, 0})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)
}

func TestAccuracy(t *testing.T) {
	yTrue := []int{1, 0, 1, 1}
	yPred := []int{1, 0, 0, 1}
	assert.InDelta(t, 0.75, Accuracy(yTrue, yPred), 1e-12)

	assert.Equal(t, 1.0, Accuracy([]int{0, 1}, []int{0, 1}))
	assert.Equal(t, 0.0, Accuracy([]int{0, 1}, []int{1, 0}))
}

func TestPrecisionRecallF1(t *testing.T) {
	// TP=2, FP=1, FN=1: precision 2/3, recall 2/3, F1 2/3.
	yTrue := []int{1, 1, 0, 1, 0}
	yPred := []int{1, 1, 1, 0, 0}

	precision, recall, f1 := PrecisionRecallF1(yTrue, yPred)
	assert.InDelta(t, 2.0/3.0, precision, 1e-12)
	assert.InDelta(t, 2.0/3.0, recall, 1e-12)
	assert.InDelta(t, 2.0/3.0, f1, 1e-12)
}

func TestPrecisionRecallF1NoPositivePredictions(t *testing.T) {
	precision, recall, f1 := PrecisionRecallF1([]int{1, 0}, []int{0, 0})
	assert.Equal(t, 0.0, precision)
	assert.Equal(t, 0.0, recall)
	assert.Equal(t, 0.0, f1)
}
