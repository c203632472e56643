package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"qlct/internal/errors"
	"qlct/internal/quantum"
	"qlct/internal/render"
)

// CircuitCmd prints the gate sequence of a search.
var CircuitCmd = &cobra.Command{
	Use:   "circuit",
	Short: "Show the Grover circuit for a search",
	Long: `Print the gate sequence the simulator applies for a search, either as
a numbered table or as OpenQASM 2.0.

Examples:
  qlct circuit -n 3 -t 5
  qlct circuit -n 3 -t 5 --qasm > grover.qasm`,
	Args: cobra.NoArgs,
	RunE: runCircuit,
}

// SimulateCmd runs an OpenQASM file through the simulator.
var SimulateCmd = &cobra.Command{
	Use:   "simulate <file.qasm>",
	Short: "Simulate an OpenQASM circuit",
	Long: `Parse an OpenQASM 2.0 file using h, x, cx, ccx and mcx on a single qreg,
simulate it from |0…0⟩ and print the resulting distribution.

The most likely state is highlighted unless --target is given.

Examples:
  qlct circuit -n 3 -t 5 --qasm | qlct simulate -
  qlct simulate grover.qasm --target 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	addSearchFlags(CircuitCmd)
	CircuitCmd.Flags().Bool("qasm", false, "print OpenQASM 2.0 instead of a table")

	SimulateCmd.Flags().IntP("target", "t", -1, "basis state to highlight")
}

func runCircuit(cmd *cobra.Command, args []string) error {
	s, err := newSearch(cmd)
	if err != nil {
		return err
	}
	c, err := s.engine.Circuit(s.qubits, s.target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asQASM, _ := cmd.Flags().GetBool("qasm"); asQASM {
		fmt.Fprint(out, c.ToQASM())
		return nil
	}

	counts := c.Counts()
	fmt.Fprintln(out, render.Panel(render.GateList(c.Gates(), -1, 0)))
	fmt.Fprintln(out, render.Summary("Circuit",
		"qubits", c.NumQubits,
		"iterations", s.engine.Iterations(),
		"gates", c.Len(),
		quantum.Hadamard, counts[quantum.Hadamard],
		quantum.BitFlip, counts[quantum.BitFlip],
		quantum.MultiControlledBitFlip, counts[quantum.MultiControlledBitFlip],
	))
	return nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	var (
		src []byte
		err error
	)
	if args[0] == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(args[0])
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}

	c, err := quantum.ParseQASM(string(src))
	if err != nil {
		return err
	}
	if c.NumQubits > cfg.Search.MaxQubits {
		return errors.WithHintf(
			errors.Newf("circuit has %d qubits, limit is %d", c.NumQubits, cfg.Search.MaxQubits),
			"raise search.max_qubits if you need %d qubits", c.NumQubits)
	}

	probs, err := quantum.Simulate(c)
	if err != nil {
		return err
	}

	target, _ := cmd.Flags().GetInt("target")
	if target < 0 || target >= len(probs) {
		target = floats.MaxIdx(probs)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Panel(render.Summary("Simulation",
		"qubits", c.NumQubits,
		"gates", c.Len(),
		"state", fmt.Sprintf("%d |%s⟩", target, render.Bits(target, c.NumQubits)),
		"probability", probs[target],
	)))
	fmt.Fprintln(out, render.Histogram(probs, target, 0))
	return nil
}
