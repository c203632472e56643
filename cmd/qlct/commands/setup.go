package commands

import (
	"github.com/spf13/cobra"

	"qlct/internal/config"
	"qlct/internal/engine"
	"qlct/internal/errors"
	"qlct/internal/grover"
	"qlct/internal/logger"
)

// cfg is the effective configuration, set by Setup before any command runs.
var cfg *config.Config

// Setup loads configuration and initializes the global logger from it.
// An empty configPath searches the default locations.
func Setup(configPath string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logger.Initialize(c.Log.JSON, c.Log.Level); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	cfg = c
	logger.Logger.Debugw("Configuration loaded", "qubits", c.Search.Qubits, "kem", c.Crypto.KEM)
	return nil
}

// addSearchFlags registers the flags that override the search.* settings.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("qubits", "n", 0, "register size (default search.qubits)")
	cmd.Flags().IntP("target", "t", 0, "marked basis state index (default search.target)")
	cmd.Flags().IntP("iterations", "k", 0, "oracle+diffusion rounds (default search.iterations)")
	cmd.Flags().Bool("optimal", false, "use ⌊π/4·√2^n⌋ rounds")
	cmd.MarkFlagsMutuallyExclusive("iterations", "optimal")
}

// search is a validated search problem with an engine ready to run it.
type search struct {
	engine *engine.Engine
	qubits int
	target int
}

func newSearch(cmd *cobra.Command) (*search, error) {
	qubits := intFlag(cmd, "qubits", cfg.Search.Qubits)
	target := intFlag(cmd, "target", cfg.Search.Target)
	iterations := intFlag(cmd, "iterations", cfg.Search.Iterations)
	if iterations < 1 {
		return nil, errors.Wrapf(engine.ErrInvalidConfig, "iterations %d, need at least 1", iterations)
	}

	// OptimalIterations shifts by qubits, so it only sees a register the
	// engine limit already admits.
	if optimal, _ := cmd.Flags().GetBool("optimal"); optimal && qubits >= 1 && qubits <= cfg.Search.MaxQubits {
		iterations = grover.OptimalIterations(qubits)
	}

	eng, err := engine.New(engine.Options{Iterations: iterations, MaxQubits: cfg.Search.MaxQubits}, logger.Logger.Named("engine"))
	if err != nil {
		return nil, err
	}
	if err := eng.Validate(qubits, target); err != nil {
		return nil, err
	}
	return &search{engine: eng, qubits: qubits, target: target}, nil
}

// intFlag returns the flag value when it was set on the command line, else def.
func intFlag(cmd *cobra.Command, name string, def int) int {
	if !cmd.Flags().Changed(name) {
		return def
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}
