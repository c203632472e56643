package quantum

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies the unitary a Gate applies.
type Kind int

const (
	// Hadamard maps (a0, a1) to ((a0+a1)/√2, (a0-a1)/√2) on the target qubit.
	Hadamard Kind = iota
	// BitFlip swaps the |0⟩ and |1⟩ amplitudes of the target qubit.
	BitFlip
	// MultiControlledBitFlip flips the target only where every control bit is 1.
	// With no controls it behaves as BitFlip.
	MultiControlledBitFlip
)

func (k Kind) String() string {
	switch k {
	case Hadamard:
		return "H"
	case BitFlip:
		return "X"
	case MultiControlledBitFlip:
		return "MCX"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Gate is one immutable step of a circuit: a kind, a target qubit and,
// for MultiControlledBitFlip, the control qubits.
type Gate struct {
	kind     Kind
	target   int
	controls []int
}

// H returns a Hadamard gate on qubit q.
func H(q int) Gate { return Gate{kind: Hadamard, target: q} }

// X returns a bit-flip gate on qubit q.
func X(q int) Gate { return Gate{kind: BitFlip, target: q} }

// MCX returns a multi-controlled bit-flip on target. The controls are copied;
// an empty control set is valid and always satisfied.
func MCX(target int, controls ...int) Gate {
	return Gate{kind: MultiControlledBitFlip, target: target, controls: slices.Clone(controls)}
}

// Kind returns the gate kind.
func (g Gate) Kind() Kind { return g.kind }

// Target returns the target qubit index.
func (g Gate) Target() int { return g.target }

// Controls returns a copy of the control qubit indices.
func (g Gate) Controls() []int { return slices.Clone(g.controls) }

// maxQubit returns the highest qubit index the gate touches.
func (g Gate) maxQubit() int {
	m := g.target
	for _, c := range g.controls {
		m = max(m, c)
	}
	return m
}

// controlMask packs the control qubits into an index bit mask.
func (g Gate) controlMask() int {
	mask := 0
	for _, c := range g.controls {
		mask |= 1 << c
	}
	return mask
}

func (g Gate) String() string {
	if g.kind != MultiControlledBitFlip {
		return fmt.Sprintf("%s q[%d]", g.kind, g.target)
	}
	ctrls := make([]string, len(g.controls))
	for i, c := range g.controls {
		ctrls[i] = fmt.Sprintf("q[%d]", c)
	}
	return fmt.Sprintf("%s [%s] -> q[%d]", g.kind, strings.Join(ctrls, ", "), g.target)
}
