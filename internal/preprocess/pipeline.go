package preprocess

import (
	"math"

	"github.com/qmlgo/qheart/internal/domain"
)

// Options configures the preprocessing pipeline
type Options struct {
	TestFraction float64
	Seed         int64
	Stratify     bool
}

// Prepared is the preprocessing output: one split per downstream path plus
// the fitted parameter objects. The parameter objects are threaded to both
// train and test transforms explicitly and are never refit on test rows.
type Prepared struct {
	Classical *domain.Split // standardized features
	Quantum   *domain.Split // features scaled into [0, π] rotation angles

	Imputer  *MedianImputer
	Standard *StandardScaler
	MinMax   *MinMaxScaler
}

// Prepare encodes the dataset, splits it with the seeded shuffle, imputes
// the cholesterol sentinel with the training median, and produces the two
// scaled representations. Rows keep their split assignment across both
// representations so the evaluators score the same partition.
func Prepare(ds *domain.Dataset, opts Options) (*Prepared, error) {
	X := Features(ds)
	y := ds.Labels()

	raw := TrainTestSplit(X, y, opts.TestFraction, opts.Seed, opts.Stratify)

	imputer := NewCholesterolImputer()
	if err := imputer.Fit(raw.XTrain); err != nil {
		return nil, err
	}
	trainImputed := imputer.Transform(raw.XTrain)
	testImputed := imputer.Transform(raw.XTest)

	standard := &StandardScaler{}
	standard.Fit(trainImputed)

	minmax := NewMinMaxScaler(math.Pi)
	minmax.Fit(trainImputed)

	return &Prepared{
		Classical: &domain.Split{
			XTrain: standard.Transform(trainImputed),
			XTest:  standard.Transform(testImputed),
			YTrain: raw.YTrain,
			YTest:  raw.YTest,
		},
		Quantum: &domain.Split{
			XTrain: minmax.Transform(trainImputed),
			XTest:  minmax.Transform(testImputed),
			YTrain: raw.YTrain,
			YTest:  raw.YTest,
		},
		Imputer:  imputer,
		Standard: standard,
		MinMax:   minmax,
	}, nil
}
