package quantum

import (
	"fmt"
	"slices"

	"qlct/internal/errors"
)

// ErrInvalidCircuit is returned when a circuit references qubits outside its
// register or has a malformed multi-controlled gate.
var ErrInvalidCircuit = errors.New("invalid circuit")

// MaxQubits is the largest register any circuit may declare; 2^30 amplitudes
// already take 16 GiB.
const MaxQubits = 30

// Circuit is an ordered gate sequence over a fixed qubit register.
type Circuit struct {
	NumQubits int
	gates     []Gate
}

// NewCircuit returns an empty circuit on numQubits qubits.
func NewCircuit(numQubits int) *Circuit {
	return &Circuit{NumQubits: numQubits}
}

// Append adds gates to the end of the circuit.
func (c *Circuit) Append(gates ...Gate) {
	c.gates = append(c.gates, gates...)
}

// AddH appends a Hadamard on every listed qubit, in order.
func (c *Circuit) AddH(qubits ...int) {
	for _, q := range qubits {
		c.gates = append(c.gates, H(q))
	}
}

// AddX appends a bit flip on every listed qubit, in order.
func (c *Circuit) AddX(qubits ...int) {
	for _, q := range qubits {
		c.gates = append(c.gates, X(q))
	}
}

// AddMCX appends a multi-controlled bit flip.
func (c *Circuit) AddMCX(target int, controls ...int) {
	c.gates = append(c.gates, MCX(target, controls...))
}

// Gates returns the gate sequence. The slice is a copy; gates are values.
func (c *Circuit) Gates() []Gate {
	return slices.Clone(c.gates)
}

// Len returns the number of gates.
func (c *Circuit) Len() int {
	return len(c.gates)
}

// Size returns the basis-state count 2^NumQubits.
func (c *Circuit) Size() int {
	return 1 << c.NumQubits
}

// Validate checks that the register size is in 1..MaxQubits and every gate
// fits in it.
func (c *Circuit) Validate() error {
	if c.NumQubits < 1 {
		return errors.Wrapf(ErrInvalidCircuit, "qubit count %d, need at least 1", c.NumQubits)
	}
	if c.NumQubits > MaxQubits {
		return errors.Wrapf(ErrInvalidCircuit, "qubit count %d exceeds %d", c.NumQubits, MaxQubits)
	}
	for i, g := range c.gates {
		if g.target < 0 || g.maxQubit() >= c.NumQubits {
			return errors.Wrapf(ErrInvalidCircuit, "gate %d (%s) outside %d-qubit register", i, g, c.NumQubits)
		}
		seen := make(map[int]bool, len(g.controls))
		for _, ctrl := range g.controls {
			if ctrl < 0 {
				return errors.Wrapf(ErrInvalidCircuit, "gate %d (%s) has negative control", i, g)
			}
			if ctrl == g.target {
				return errors.Wrapf(ErrInvalidCircuit, "gate %d (%s) controls its own target", i, g)
			}
			if seen[ctrl] {
				return errors.Wrapf(ErrInvalidCircuit, "gate %d (%s) repeats control q[%d]", i, g, ctrl)
			}
			seen[ctrl] = true
		}
	}
	return nil
}

// Counts returns how many gates of each kind the circuit holds.
func (c *Circuit) Counts() map[Kind]int {
	counts := make(map[Kind]int, 3)
	for _, g := range c.gates {
		counts[g.kind]++
	}
	return counts
}

func (c *Circuit) String() string {
	return fmt.Sprintf("circuit(%d qubits, %d gates)", c.NumQubits, len(c.gates))
}
