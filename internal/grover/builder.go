// Package grover assembles Grover amplitude-amplification circuits and reads
// the success probability of the marked state off a distribution.
//
// The circuit is superposition followed by iterations of oracle + diffusion.
// Both reflections use the same phase-flip sandwich on the last qubit,
// H(n-1) · MCX(controls 0..n-2 → n-1) · H(n-1), which negates the all-ones
// basis state. The oracle first remaps the target onto all-ones with bit flips;
// diffusion reaches the all-zero state through H then X on every qubit.
package grover

import (
	"math"

	"qlct/internal/quantum"
)

// Build returns the gate sequence for one superposition layer followed by
// iterations rounds of oracle and diffusion. It never touches a state vector.
// Callers validate 0 ≤ target < 2^numQubits, numQubits ≥ 1 and iterations ≥ 1
// before calling.
func Build(numQubits, target, iterations int) *quantum.Circuit {
	c := quantum.NewCircuit(numQubits)
	c.AddH(allQubits(numQubits)...)
	for range iterations {
		addOracle(c, target)
		addDiffusion(c)
	}
	return c
}

// OptimalIterations returns ⌊π/4·√N⌋ for N = 2^numQubits, at least 1.
func OptimalIterations(numQubits int) int {
	n := float64(int(1) << numQubits)
	return max(1, int(math.Pi/4*math.Sqrt(n)))
}

// addOracle phase-flips the target basis state.
func addOracle(c *quantum.Circuit, target int) {
	zeros := zeroBits(c.NumQubits, target)
	c.AddX(zeros...)
	addPhaseFlip(c)
	c.AddX(zeros...)
}

// addDiffusion reflects amplitudes about their mean.
func addDiffusion(c *quantum.Circuit) {
	for q := range c.NumQubits {
		c.AddH(q)
		c.AddX(q)
	}
	addPhaseFlip(c)
	for q := range c.NumQubits {
		c.AddX(q)
		c.AddH(q)
	}
}

// addPhaseFlip negates the all-ones basis state. On one qubit the control
// set is empty and the sandwich reduces to H·X·H = Z.
func addPhaseFlip(c *quantum.Circuit) {
	last := c.NumQubits - 1
	c.AddH(last)
	c.AddMCX(last, allQubits(last)...)
	c.AddH(last)
}

// zeroBits lists the qubits whose bit in target is 0.
func zeroBits(numQubits, target int) []int {
	var qs []int
	for q := range numQubits {
		if (target>>q)&1 == 0 {
			qs = append(qs, q)
		}
	}
	return qs
}

func allQubits(n int) []int {
	qs := make([]int, n)
	for i := range qs {
		qs[i] = i
	}
	return qs
}
