package quantum

import (
	"math"

	"github.com/qmlgo/qheart/internal/domain"
)

// gateKind enumerates the gate set needed by the feature maps
type gateKind int

const (
	gateH gateKind = iota
	gateX
	gateRY
	gateRZ
	gateCNOT
)

type gate struct {
	kind    gateKind
	qubit   int
	control int // CNOT only
	theta   float64
}

// Circuit is an ordered gate sequence over a fixed qubit register.
// Feature maps build one circuit per feature vector; running it from |0…0⟩
// yields the encoded state.
type Circuit struct {
	qubits int
	gates  []gate
}

// NewCircuit creates an empty circuit over n qubits
func NewCircuit(n int) (*Circuit, error) {
	if n <= 0 || n > MaxSupportedQubits {
		return nil, domain.NewConfigurationError("qubits", n, "outside supported simulator range")
	}
	return &Circuit{qubits: n}, nil
}

// NumQubits returns the register width
func (c *Circuit) NumQubits() int { return c.qubits }

// Depth returns the number of gates
func (c *Circuit) Depth() int { return len(c.gates) }

// H appends a Hadamard on qubit q
func (c *Circuit) H(q int) { c.gates = append(c.gates, gate{kind: gateH, qubit: q}) }

// X appends a Pauli-X on qubit q
func (c *Circuit) X(q int) { c.gates = append(c.gates, gate{kind: gateX, qubit: q}) }

// RY appends a Y-axis rotation by theta on qubit q
func (c *Circuit) RY(q int, theta float64) {
	c.gates = append(c.gates, gate{kind: gateRY, qubit: q, theta: theta})
}

// RZ appends a Z-axis rotation by theta on qubit q
func (c *Circuit) RZ(q int, theta float64) {
	c.gates = append(c.gates, gate{kind: gateRZ, qubit: q, theta: theta})
}

// CNOT appends a controlled-X
func (c *Circuit) CNOT(control, target int) {
	c.gates = append(c.gates, gate{kind: gateCNOT, qubit: target, control: control})
}

// Run executes the circuit from |0…0⟩ and returns the final state
func (c *Circuit) Run() (*State, error) {
	state, err := NewZeroState(c.qubits)
	if err != nil {
		return nil, err
	}

	invSqrt2 := complex(1/math.Sqrt2, 0)
	for _, g := range c.gates {
		switch g.kind {
		case gateH:
			state.applySingle(g.qubit, [2][2]complex128{
				{invSqrt2, invSqrt2},
				{invSqrt2, -invSqrt2},
			})
		case gateX:
			state.applySingle(g.qubit, [2][2]complex128{
				{0, 1},
				{1, 0},
			})
		case gateRY:
			cos := complex(math.Cos(g.theta/2), 0)
			sin := complex(math.Sin(g.theta/2), 0)
			state.applySingle(g.qubit, [2][2]complex128{
				{cos, -sin},
				{sin, cos},
			})
		case gateRZ:
			state.applySingle(g.qubit, [2][2]complex128{
				{complex(math.Cos(g.theta/2), -math.Sin(g.theta/2)), 0},
				{0, complex(math.Cos(g.theta/2), math.Sin(g.theta/2))},
			})
		case gateCNOT:
			state.applyCNOT(g.control, g.qubit)
		}
	}

	return state, nil
}
