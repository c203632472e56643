package quantum

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"qlct/internal/errors"
)

// NormTolerance bounds how far the probability total may drift from 1.
const NormTolerance = 1e-9

// Simulator evolves |0…0⟩ through a circuit. It owns its state vector
// exclusively; callers only ever see probability copies. A Simulator is not
// safe for concurrent use, and concurrent requests should each build their own.
type Simulator struct {
	gates   []Gate
	state   *stateVector
	applied int
}

// NewSimulator validates the circuit and prepares a fresh |0…0⟩ register.
func NewSimulator(c *Circuit) (*Simulator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		gates: c.Gates(),
		state: newStateVector(c.NumQubits),
	}, nil
}

// NumQubits returns the register width.
func (s *Simulator) NumQubits() int { return s.state.numQubits }

// Len returns the total number of gates in the loaded circuit.
func (s *Simulator) Len() int { return len(s.gates) }

// Applied returns how many gates have been applied so far.
func (s *Simulator) Applied() int { return s.applied }

// Done reports whether every gate has been applied.
func (s *Simulator) Done() bool { return s.applied == len(s.gates) }

// Next returns the gate the next Step will apply.
func (s *Simulator) Next() (Gate, bool) {
	if s.Done() {
		return Gate{}, false
	}
	return s.gates[s.applied], true
}

// Step applies the next gate. It returns false once the circuit is exhausted.
func (s *Simulator) Step() bool {
	if s.Done() {
		return false
	}
	s.state.apply(s.gates[s.applied])
	s.applied++
	return true
}

// Run applies every remaining gate in order.
func (s *Simulator) Run() {
	for s.Step() {
	}
}

// Reset returns the register to |0…0⟩ with no gates applied.
func (s *Simulator) Reset() {
	s.state = newStateVector(s.state.numQubits)
	s.applied = 0
}

// Probabilities returns |amplitude|² per basis index. It panics with an
// assertion failure if the entries do not sum to 1 within NormTolerance,
// since every gate is unitary and drift means the gate math is wrong.
func (s *Simulator) Probabilities() []float64 {
	probs := s.state.probabilities()
	if total := floats.Sum(probs); math.Abs(total-1) > NormTolerance {
		panic(errors.AssertionFailedf(
			"probability mass %.12f after %d/%d gates on %d qubits",
			total, s.applied, len(s.gates), s.state.numQubits))
	}
	return probs
}

// Simulate runs the whole circuit on a fresh register and returns the final
// probability distribution.
func Simulate(c *Circuit) ([]float64, error) {
	sim, err := NewSimulator(c)
	if err != nil {
		return nil, err
	}
	sim.Run()
	return sim.Probabilities(), nil
}
