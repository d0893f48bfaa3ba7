package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the settings the install would use",
	Long: `Print the captured environment snapshot as YAML. Settings come from
--root/--verbose flags, DDKRN_* environment variables, and an optional
ddkrn.yaml in the package root, in that order of precedence.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := capture(cmd)
		if err != nil {
			return fmt.Errorf("reading environment: %w", err)
		}

		out, err := yaml.Marshal(env)
		if err != nil {
			return fmt.Errorf("marshaling settings: %w", err)
		}
		stdout, _ := stdio(cmd)
		fmt.Fprint(stdout, string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
