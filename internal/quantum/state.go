// Package quantum provides a small statevector simulator and the feature
// maps that turn scaled feature vectors into quantum state preparations.
// It implements the state-overlap estimator the quantum evaluator builds
// its kernel from; nothing in here knows about SVMs or medical data.
package quantum

import (
	"math"
	"math/cmplx"

	"github.com/qmlgo/qheart/internal/domain"
)

// MaxSupportedQubits is the hard simulator ceiling. A 26-qubit statevector
// is already a gigabyte of complex128; runs are bounded well below this by
// the configurable budget.
const MaxSupportedQubits = 26

// State is an n-qubit statevector with little-endian qubit ordering
// (qubit q is bit q of the amplitude index).
type State struct {
	n    int
	amps []complex128
}

// NewZeroState prepares |0...0⟩ over n qubits
func NewZeroState(n int) (*State, error) {
	if n <= 0 || n > MaxSupportedQubits {
		return nil, domain.NewConfigurationError("qubits", n, "outside supported simulator range")
	}
	amps := make([]complex128, 1<<uint(n))
	amps[0] = 1
	return &State{n: n, amps: amps}, nil
}

// NewStateFromAmplitudes prepares a state directly from amplitudes.
// The amplitude slice length must be a power of two and L2-normalized; this
// is the amplitude-encoding entry point, so a norm violation is a
// configuration error rather than silently renormalized.
func NewStateFromAmplitudes(amps []complex128) (*State, error) {
	n := 0
	for 1<<uint(n) < len(amps) {
		n++
	}
	if 1<<uint(n) != len(amps) || len(amps) == 0 {
		return nil, domain.NewConfigurationError("amplitudes", len(amps), "length must be a power of two")
	}
	if n > MaxSupportedQubits {
		return nil, domain.NewConfigurationError("qubits", n, "outside supported simulator range")
	}

	var norm float64
	for _, a := range amps {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	if math.Abs(norm-1) > 1e-9 {
		return nil, domain.NewConfigurationError("amplitudes", norm, "input vector must be L2-normalized")
	}

	copied := make([]complex128, len(amps))
	copy(copied, amps)
	return &State{n: n, amps: copied}, nil
}

// NumQubits returns the qubit count
func (s *State) NumQubits() int { return s.n }

// applySingle applies a 2x2 unitary to qubit q
func (s *State) applySingle(q int, m [2][2]complex128) {
	bit := 1 << uint(q)
	for i := range s.amps {
		if i&bit != 0 {
			continue
		}
		a0, a1 := s.amps[i], s.amps[i|bit]
		s.amps[i] = m[0][0]*a0 + m[0][1]*a1
		s.amps[i|bit] = m[1][0]*a0 + m[1][1]*a1
	}
}

// applyCNOT applies a controlled-X with the given control and target qubits
func (s *State) applyCNOT(control, target int) {
	cbit := 1 << uint(control)
	tbit := 1 << uint(target)
	for i := range s.amps {
		// visit each swap pair once, from the target-0 side
		if i&cbit != 0 && i&tbit == 0 {
			s.amps[i], s.amps[i|tbit] = s.amps[i|tbit], s.amps[i]
		}
	}
}

// Overlap returns ⟨a|b⟩
func Overlap(a, b *State) complex128 {
	var sum complex128
	for i := range a.amps {
		sum += cmplx.Conj(a.amps[i]) * b.amps[i]
	}
	return sum
}

// Fidelity returns |⟨a|b⟩|², the state-overlap probability a swap or
// inversion test would estimate on hardware.
func Fidelity(a, b *State) float64 {
	ov := Overlap(a, b)
	f := real(ov)*real(ov) + imag(ov)*imag(ov)
	// clamp floating drift into [0,1]
	if f > 1 {
		f = 1
	}
	if f < 0 {
		f = 0
	}
	return f
}
