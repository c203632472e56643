package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qlct/cmd/qlct/commands"
	"qlct/internal/errors"
	"qlct/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "qlct",
	Short: "qlct - Grover search simulator and payload protection",
	Long: `qlct - a state-vector simulator for Grover search.

It builds Grover circuits from H, X and multi-controlled X gates, simulates
them exactly and reports how likely the search is to find its target. Results
can be wrapped with a KEM-keyed stream cipher for transport.

Available commands:
  score     - Exact success probability
  estimate  - Sampled success probability
  circuit   - Show the gate sequence or OpenQASM
  simulate  - Run an OpenQASM file
  step      - Step through a circuit interactively
  protect   - Encrypt a JSON payload
  restore   - Decrypt a protected payload
  config    - Show the effective configuration

Examples:
  qlct score -n 3 -t 5
  qlct estimate -n 3 -t 5 --shots 2000 --seed 7
  qlct step -n 3 -t 5`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return commands.Setup(configPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./qlct.toml or ~/.qlct/qlct.toml)")

	rootCmd.AddCommand(commands.ScoreCmd)
	rootCmd.AddCommand(commands.EstimateCmd)
	rootCmd.AddCommand(commands.CircuitCmd)
	rootCmd.AddCommand(commands.SimulateCmd)
	rootCmd.AddCommand(commands.StepCmd)
	rootCmd.AddCommand(commands.ProtectCmd)
	rootCmd.AddCommand(commands.RestoreCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
