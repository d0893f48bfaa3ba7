package cli

import (
	"fmt"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/patch"
	"github.com/spf13/cobra"
)

var patchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Fix the ddk_ffi.hpp include in the generated C++ bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := capture(cmd)
		if err != nil {
			return fmt.Errorf("reading environment: %w", err)
		}

		stdout, _ := stdio(cmd)
		changed, err := patch.FixIncludePath(stdout, env.PackageRoot)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Fprintf(stdout, "[ OK ] %s needs no changes\n", patch.BindingsFile)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(patchCmd)
}
