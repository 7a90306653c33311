package quantum

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/qmlgo/qheart/internal/domain"
)

// KernelEstimator estimates quantum kernel entries by preparing the two
// encoded states and sampling the state-overlap measurement a fixed number
// of shots. Estimates carry sampling variance proportional to 1/√shots; a
// fixed seed makes them reproducible.
type KernelEstimator struct {
	Map   FeatureMap
	Shots int

	rng *rand.Rand
}

// NewKernelEstimator creates an estimator with a seeded sampling RNG
func NewKernelEstimator(fm FeatureMap, shots int, seed int64) (*KernelEstimator, error) {
	if shots <= 0 {
		return nil, domain.NewConfigurationError("shots", shots, "must be a positive integer")
	}
	return &KernelEstimator{
		Map:   fm,
		Shots: shots,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Gram estimates the symmetric train-vs-train kernel matrix. Each off-
// diagonal entry K(a, b) = |⟨φ(a)|φ(b)⟩|² is the exact statevector fidelity
// degraded to a shot-count estimate, one simulated overlap-test measurement
// per shot. Diagonal
// entries are exactly 1 (a state's overlap with itself), so shots are spent
// only on the strict upper triangle. States are prepared once per row.
func (e *KernelEstimator) Gram(X [][]float64) (*mat.SymDense, error) {
	states, err := e.prepareAll(X)
	if err != nil {
		return nil, err
	}

	n := len(X)
	g := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		g.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			g.SetSym(i, j, e.sample(Fidelity(states[i], states[j])))
		}
	}
	return g, nil
}

// Cross estimates the test-vs-train kernel matrix
func (e *KernelEstimator) Cross(XTest, XTrain [][]float64) (*mat.Dense, error) {
	testStates, err := e.prepareAll(XTest)
	if err != nil {
		return nil, err
	}
	trainStates, err := e.prepareAll(XTrain)
	if err != nil {
		return nil, err
	}

	k := mat.NewDense(len(XTest), len(XTrain), nil)
	for i, ts := range testStates {
		for j, tr := range trainStates {
			k.Set(i, j, e.sample(Fidelity(ts, tr)))
		}
	}
	return k, nil
}

func (e *KernelEstimator) prepareAll(X [][]float64) ([]*State, error) {
	states := make([]*State, len(X))
	for i, x := range X {
		s, err := e.Map.Prepare(x)
		if err != nil {
			return nil, err
		}
		states[i] = s
	}
	return states, nil
}

func (e *KernelEstimator) sample(p float64) float64 {
	hits := 0
	for s := 0; s < e.Shots; s++ {
		if e.rng.Float64() < p {
			hits++
		}
	}
	return float64(hits) / float64(e.Shots)
}
