package preprocess

import (
	"math/rand"

	"github.com/qmlgo/qheart/internal/domain"
)

// TrainTestSplit partitions rows into train and test sets by a seeded
// shuffle. With stratify set, the shuffle happens per class so the test set
// keeps the overall label balance. The same seed always yields the same
// partition.
func TrainTestSplit(X [][]float64, y []int, testFraction float64, seed int64, stratify bool) *domain.Split {
	rng := rand.New(rand.NewSource(seed))

	var testIdx []int
	if stratify {
		byClass := map[int][]int{}
		for i, label := range y {
			byClass[label] = append(byClass[label], i)
		}
		// Deterministic class order: 0 before 1
		for _, label := range []int{0, 1} {
			idx := byClass[label]
			rng.Shuffle(len(idx), func(a, b int) { idx[a], idx[b] = idx[b], idx[a] })
			n := int(float64(len(idx)) * testFraction)
			testIdx = append(testIdx, idx[:n]...)
		}
	} else {
		perm := rng.Perm(len(X))
		n := int(float64(len(X)) * testFraction)
		testIdx = perm[:n]
	}

	inTest := make(map[int]bool, len(testIdx))
	for _, i := range testIdx {
		inTest[i] = true
	}

	split := &domain.Split{}
	for i := range X {
		if inTest[i] {
			split.XTest = append(split.XTest, X[i])
			split.YTest = append(split.YTest, y[i])
		} else {
			split.XTrain = append(split.XTrain, X[i])
			split.YTrain = append(split.YTrain, y[i])
		}
	}
	return split
}
