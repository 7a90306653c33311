package preprocess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmlgo/qheart/internal/domain"
)

func sampleRecord(age int, chol int, disease bool) domain.Record {
	return domain.Record{
		Age:           age,
		Sex:           domain.SexMale,
		ChestPainType: domain.ChestPainASY,
		RestingBP:     120 + age%20,
		Cholesterol:   chol,
		RestingECG:    domain.ECGNormal,
		MaxHR:         190 - age,
		Oldpeak:       float64(age%4) * 0.5,
		STSlope:       domain.SlopeUp,
		HeartDisease:  disease,
	}
}

func sampleDataset(n int) *domain.Dataset {
	ds := &domain.Dataset{}
	for i := 0; i < n; i++ {
		chol := 180 + i*2
		if i%7 == 0 {
			chol = 0 // missing
		}
		ds.Records = append(ds.Records, sampleRecord(35+i%30, chol, i%2 == 1))
	}
	return ds
}

func TestPrepare(t *testing.T) {
	ds := sampleDataset(50)

	prep, err := Prepare(ds, Options{TestFraction: 0.2, Seed: 42, Stratify: true})
	require.NoError(t, err)

	assert.Len(t, prep.Classical.XTrain, 40)
	assert.Len(t, prep.Classical.XTest, 10)

	// Both representations score the same partition.
	assert.Equal(t, prep.Classical.YTrain, prep.Quantum.YTrain)
	assert.Equal(t, prep.Classical.YTest, prep.Quantum.YTest)
	assert.Len(t, prep.Quantum.XTrain, len(prep.Classical.XTrain))
}

func TestPrepareImputesSentinel(t *testing.T) {
	ds := sampleDataset(50)

	prep, err := Prepare(ds, Options{TestFraction: 0.2, Seed: 42, Stratify: true})
	require.NoError(t, err)
	require.True(t, prep.Imputer.Median > 0)

	// The quantum representation is bounded on training rows, which would not
	// hold if any sentinel zero survived into the min-max fit.
	for _, row := range prep.Quantum.XTrain {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, math.Pi+1e-12)
		}
	}
}

func TestPrepareDeterministic(t *testing.T) {
	ds := sampleDataset(40)
	opts := Options{TestFraction: 0.25, Seed: 7, Stratify: true}

	a, err := Prepare(ds, opts)
	require.NoError(t, err)
	b, err := Prepare(ds, opts)
	require.NoError(t, err)

	assert.Equal(t, a.Classical.XTrain, b.Classical.XTrain)
	assert.Equal(t, a.Quantum.XTest, b.Quantum.XTest)
	assert.Equal(t, a.Imputer.Median, b.Imputer.Median)
}
