package quantum

import (
	"math"

	"github.com/qmlgo/qheart/internal/domain"
)

// FeatureMap turns a scaled feature vector into a prepared quantum state.
// Inputs arrive min-max scaled into [0, π] by the preprocessor.
type FeatureMap interface {
	// Name identifies the encoding in results and configuration
	Name() string
	// NumQubits reports the register width required for d features
	NumQubits(d int) int
	// Prepare encodes one feature vector
	Prepare(x []float64) (*State, error)
}

// NewFeatureMap constructs the named encoding, rejecting combinations whose
// qubit requirement exceeds the budget.
func NewFeatureMap(name string, features, maxQubits int) (FeatureMap, error) {
	var fm FeatureMap
	switch name {
	case "basis":
		fm = &BasisMap{Threshold: math.Pi / 2}
	case "amplitude":
		fm = &AmplitudeMap{}
	case "angle":
		fm = &AngleMap{}
	default:
		return nil, domain.NewConfigurationError("encoding", name, "unknown feature map")
	}

	if q := fm.NumQubits(features); q > maxQubits {
		return nil, domain.NewConfigurationError("encoding", name,
			"required qubit count exceeds the configured budget")
	}
	return fm, nil
}

// BasisMap binarizes each feature against a threshold and writes the bits
// into computational-basis states, one qubit per feature. Qubit count grows
// linearly with the binarized bit-width, which bounds the feature count.
type BasisMap struct {
	Threshold float64 // features at or above it encode |1⟩
}

// Name returns the encoding identifier
func (m *BasisMap) Name() string { return "basis" }

// NumQubits returns one qubit per feature bit
func (m *BasisMap) NumQubits(d int) int { return d }

// Prepare builds and runs the basis-state circuit for x
func (m *BasisMap) Prepare(x []float64) (*State, error) {
	circuit, err := NewCircuit(len(x))
	if err != nil {
		return nil, err
	}
	for q, v := range x {
		if v >= m.Threshold {
			circuit.X(q)
		}
	}
	return circuit.Run()
}

// AmplitudeMap writes the feature vector into the amplitude distribution of
// a ⌈log2(d)⌉-qubit state, zero-padding to the next power of two. The input
// must already be L2-normalized; this is the variant-specific preprocessing
// sub-step, and violations are rejected rather than repaired.
type AmplitudeMap struct{}

// Name returns the encoding identifier
func (m *AmplitudeMap) Name() string { return "amplitude" }

// NumQubits returns ⌈log2(d)⌉
func (m *AmplitudeMap) NumQubits(d int) int {
	n := 0
	for 1<<uint(n) < d {
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}

// Prepare encodes x into state amplitudes
func (m *AmplitudeMap) Prepare(x []float64) (*State, error) {
	size := 1 << uint(m.NumQubits(len(x)))
	amps := make([]complex128, size)
	for i, v := range x {
		amps[i] = complex(v, 0)
	}
	return NewStateFromAmplitudes(amps)
}

// Normalize returns an L2-normalized copy of x, the amplitude-encoding
// preprocessing sub-step. An all-zero vector cannot be normalized.
func Normalize(x []float64) ([]float64, error) {
	var sq float64
	for _, v := range x {
		sq += v * v
	}
	if sq == 0 {
		return nil, domain.NewConfigurationError("amplitudes", 0.0, "cannot L2-normalize the zero vector")
	}
	norm := math.Sqrt(sq)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v / norm
	}
	return out, nil
}

// AngleMap rotates one qubit per feature by the feature's angle and applies
// a pairwise-entangling CNOT chain between two rotation layers. Robust to
// small numeric error; this is the default encoding.
type AngleMap struct{}

// Name returns the encoding identifier
func (m *AngleMap) Name() string { return "angle" }

// NumQubits returns one qubit per feature
func (m *AngleMap) NumQubits(d int) int { return d }

// Prepare builds and runs the rotation ansatz for x
func (m *AngleMap) Prepare(x []float64) (*State, error) {
	n := len(x)
	circuit, err := NewCircuit(n)
	if err != nil {
		return nil, err
	}

	for q, v := range x {
		circuit.RY(q, v)
	}
	for q := 0; q < n-1; q++ {
		circuit.CNOT(q, q+1)
	}
	for q, v := range x {
		circuit.RZ(q, v)
	}

	return circuit.Run()
}
