package cli

import (
	"context"
	"fmt"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/manifest"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/postinstall"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build native libraries and verify the install",
	Long: `Run the post-install sequence:

  1. Skip when CI is set and BUILD_NATIVE_LIBS is not.
  2. Require uniffi-bindgen-react-native (via npx or a global install).
  3. Require every shipped source file.
  4. Patch the C++ include path, build iOS (macOS only) and Android (when
     ANDROID_NDK_ROOT or NDK_HOME is set).
  5. Verify the installed files.

Exits 0 on success or CI skip, 1 on any fatal error.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	env, err := capture(cmd)
	if err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}

	files, err := manifest.Default()
	if err != nil {
		return err
	}

	stdout, stderr := stdio(cmd)
	s := &postinstall.Sequencer{
		Env:      env,
		Runner:   newRunner(stdout, stderr, logger(cmd, env)),
		Manifest: files,
		Stdout:   stdout,
		Stderr:   stderr,
	}
	return s.Run(context.Background())
}
