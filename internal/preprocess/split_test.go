package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLabeled(n0, n1 int) ([][]float64, []int) {
	var X [][]float64
	var y []int
	for i := 0; i < n0; i++ {
		X = append(X, []float64{float64(i)})
		y = append(y, 0)
	}
	for i := 0; i < n1; i++ {
		X = append(X, []float64{float64(100 + i)})
		y = append(y, 1)
	}
	return X, y
}

func TestTrainTestSplitSizes(t *testing.T) {
	X, y := makeLabeled(50, 50)

	split := TrainTestSplit(X, y, 0.2, 42, false)

	assert.Len(t, split.XTest, 20)
	assert.Len(t, split.XTrain, 80)
	assert.Len(t, split.YTest, 20)
	assert.Len(t, split.YTrain, 80)
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	X, y := makeLabeled(30, 30)

	a := TrainTestSplit(X, y, 0.25, 42, true)
	b := TrainTestSplit(X, y, 0.25, 42, true)

	assert.Equal(t, a.XTrain, b.XTrain)
	assert.Equal(t, a.XTest, b.XTest)
	assert.Equal(t, a.YTrain, b.YTrain)
	assert.Equal(t, a.YTest, b.YTest)
}

func TestTrainTestSplitSeedChangesPartition(t *testing.T) {
	X, y := makeLabeled(40, 40)

	a := TrainTestSplit(X, y, 0.25, 1, false)
	b := TrainTestSplit(X, y, 0.25, 2, false)

	assert.NotEqual(t, a.XTest, b.XTest)
}

func TestTrainTestSplitStratified(t *testing.T) {
	// 60/40 class balance must survive the split.
	X, y := makeLabeled(60, 40)

	split := TrainTestSplit(X, y, 0.2, 7, true)
	require.Len(t, split.YTest, 20)

	ones := 0
	for _, label := range split.YTest {
		if label == 1 {
			ones++
		}
	}
	assert.Equal(t, 8, ones)
}

func TestTrainTestSplitPartitionIsDisjointAndComplete(t *testing.T) {
	X, y := makeLabeled(25, 25)

	split := TrainTestSplit(X, y, 0.3, 11, true)

	seen := map[float64]int{}
	for _, r := range split.XTrain {
		seen[r[0]]++
	}
	for _, r := range split.XTest {
		seen[r[0]]++
	}

	require.Len(t, seen, len(X))
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}
