package commands

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"qlct/internal/errors"
)

// ConfigCmd prints the effective configuration.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Display the configuration after merging all sources.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (QLCT_* prefix, e.g. QLCT_SEARCH_QUBITS)
3. --config file, or qlct.toml in the working directory or ~/.qlct
4. Default values

Examples:
  qlct config
  qlct config --format json`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	ConfigCmd.Flags().String("format", "toml", "Output format: toml, json, yaml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		return printJSON(out, cfg)

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# qlct configuration\n%s", data)

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# qlct configuration\n%s", data)

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	return nil
}
