// Package engine is the validated entry point to the simulator: it rejects bad
// inputs before any circuit is built, then runs a fresh simulation per call.
package engine

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"qlct/internal/errors"
	"qlct/internal/grover"
	"qlct/internal/quantum"
	"qlct/internal/sampling"
)

// ErrInvalidConfig marks inputs rejected before simulation.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultMaxQubits bounds the register so a single call stays within memory.
const DefaultMaxQubits = 16

// Options tunes every simulation an Engine runs.
type Options struct {
	// Iterations is the number of oracle+diffusion rounds. Zero means 1.
	Iterations int
	// MaxQubits rejects larger registers. Zero means DefaultMaxQubits.
	MaxQubits int
}

// Engine runs Grover simulations. It holds no simulation state, so one Engine
// can serve concurrent callers; each call allocates its own state vector.
type Engine struct {
	opts Options
	log  *zap.SugaredLogger
}

// New returns an Engine. A nil logger disables logging.
func New(opts Options, log *zap.SugaredLogger) (*Engine, error) {
	if opts.Iterations == 0 {
		opts.Iterations = 1
	}
	if opts.MaxQubits == 0 {
		opts.MaxQubits = DefaultMaxQubits
	}
	if opts.Iterations < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "iterations %d, need at least 1", opts.Iterations)
	}
	if opts.MaxQubits < 1 || opts.MaxQubits > quantum.MaxQubits {
		return nil, errors.Wrapf(ErrInvalidConfig, "max qubits %d, need 1..%d", opts.MaxQubits, quantum.MaxQubits)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{opts: opts, log: log}, nil
}

// Iterations returns the configured oracle+diffusion round count.
func (e *Engine) Iterations() int { return e.opts.Iterations }

// Circuit validates the inputs and returns the Grover circuit for them.
func (e *Engine) Circuit(numQubits, target int) (*quantum.Circuit, error) {
	if err := e.Validate(numQubits, target); err != nil {
		return nil, err
	}
	return grover.Build(numQubits, target, e.opts.Iterations), nil
}

// Distribution returns the full probability distribution after the circuit.
func (e *Engine) Distribution(numQubits, target int) ([]float64, error) {
	c, err := e.Circuit(numQubits, target)
	if err != nil {
		return nil, err
	}
	probs, err := quantum.Simulate(c)
	if err != nil {
		return nil, errors.Wrap(err, "simulate")
	}
	e.log.Debugw("Simulated search circuit",
		"qubits", numQubits,
		"target", target,
		"iterations", e.opts.Iterations,
		"gates", c.Len())
	return probs, nil
}

// SearchScore returns the exact probability of measuring target.
func (e *Engine) SearchScore(numQubits, target int) (float64, error) {
	probs, err := e.Distribution(numQubits, target)
	if err != nil {
		return 0, err
	}
	return grover.Score(probs, target), nil
}

// AmplitudeEstimate returns the fraction of shots that measured target.
// A nil seed draws a fresh random one; any non-nil seed, including 0, makes
// the call reproducible.
func (e *Engine) AmplitudeEstimate(numQubits, target, shots int, seed *uint64) (float64, error) {
	if shots < 1 {
		return 0, errors.WithHint(
			errors.Wrapf(ErrInvalidConfig, "shots %d, need at least 1", shots),
			"more shots lower the standard error, roughly 1/√shots")
	}
	probs, err := e.Distribution(numQubits, target)
	if err != nil {
		return 0, err
	}
	s := rand.Uint64()
	if seed != nil {
		s = *seed
	}
	est, err := sampling.Estimate(probs, target, shots, sampling.NewSource(s))
	if err != nil {
		return 0, errors.Wrap(err, "estimate")
	}
	e.log.Debugw("Estimated amplitude", "target", target, "shots", shots, "seed", s, "estimate", est)
	return est, nil
}

// Validate checks 1 ≤ numQubits ≤ MaxQubits and 0 ≤ target < 2^numQubits.
func (e *Engine) Validate(numQubits, target int) error {
	if numQubits < 1 {
		return errors.Wrapf(ErrInvalidConfig, "qubit count %d, need at least 1", numQubits)
	}
	if numQubits > e.opts.MaxQubits {
		return errors.WithHintf(
			errors.Wrapf(ErrInvalidConfig, "qubit count %d exceeds limit %d", numQubits, e.opts.MaxQubits),
			"memory grows as 2^n; raise search.max_qubits if you need %d qubits", numQubits)
	}
	if size := 1 << numQubits; target < 0 || target >= size {
		return errors.Wrapf(ErrInvalidConfig, "target %d outside [0, %d)", target, size)
	}
	return nil
}
