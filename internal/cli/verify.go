package cli

import (
	"fmt"
	"strings"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/manifest"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the package for shipped sources and built libraries",
	Long: `Report which shipped source files and platform libraries exist under the
package root. Fails only when a shipped source file is missing; unbuilt
platform libraries are informational.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := capture(cmd)
		if err != nil {
			return fmt.Errorf("reading environment: %w", err)
		}

		files, err := manifest.Default()
		if err != nil {
			return err
		}

		stdout, _ := stdio(cmd)
		report := files.Verify(stdout, env.PackageRoot, env.Platform)
		if !report.OK {
			return fmt.Errorf("missing required files: %s", strings.Join(report.Missing(), ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
