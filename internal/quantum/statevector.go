package quantum

import (
	"math"
	"math/cmplx"
)

// Complex is the amplitude type.
type Complex = complex128

// stateVector holds 2^n amplitudes. Qubit q corresponds to bit q of the
// basis index, so index 0b101 on three qubits has qubits 0 and 2 set.
type stateVector struct {
	amplitudes []Complex
	numQubits  int
}

// newStateVector returns |0…0⟩ on numQubits qubits.
func newStateVector(numQubits int) *stateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &stateVector{amplitudes: amps, numQubits: numQubits}
}

// apply runs one gate over the amplitude array in place.
func (s *stateVector) apply(g Gate) {
	switch g.kind {
	case Hadamard:
		s.applyH(g.target)
	case BitFlip:
		s.applyX(g.target)
	case MultiControlledBitFlip:
		s.applyMCX(g.target, g.controlMask())
	}
}

func (s *stateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amplitudes[i], s.amplitudes[j]
			s.amplitudes[i] = hFactor * (a0 + a1)
			s.amplitudes[j] = hFactor * (a0 - a1)
		}
	}
}

func (s *stateVector) applyX(q int) {
	n := len(s.amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.amplitudes[i], s.amplitudes[j] = s.amplitudes[j], s.amplitudes[i]
		}
	}
}

// applyMCX swaps the target pair only where all bits in ctrlMask are set.
// A zero mask is always satisfied.
func (s *stateVector) applyMCX(q, ctrlMask int) {
	n := len(s.amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 && i&ctrlMask == ctrlMask {
			j := i | bit
			s.amplitudes[i], s.amplitudes[j] = s.amplitudes[j], s.amplitudes[i]
		}
	}
}

// probabilities returns |a_i|² for every basis index as a fresh slice.
func (s *stateVector) probabilities() []float64 {
	probs := make([]float64, len(s.amplitudes))
	for i, amp := range s.amplitudes {
		probs[i] = real(amp * cmplx.Conj(amp))
	}
	return probs
}
