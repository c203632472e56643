package commands

import (
	"github.com/spf13/cobra"

	"qlct/internal/tui"
)

// StepCmd opens the interactive gate stepper.
var StepCmd = &cobra.Command{
	Use:   "step",
	Short: "Step through a search circuit gate by gate",
	Long: `Open a terminal UI showing the circuit and the distribution after each
applied gate. → applies the next gate, ← undoes one, G runs to the end,
r resets and q quits.

Examples:
  qlct step -n 3 -t 5
  qlct step -n 4 -t 11 --optimal`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSearch(cmd)
		if err != nil {
			return err
		}
		c, err := s.engine.Circuit(s.qubits, s.target)
		if err != nil {
			return err
		}
		return tui.Run(c, s.target)
	},
}

func init() {
	addSearchFlags(StepCmd)
}
