package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/branding"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/config"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/platform"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/postinstall"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/runner"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootDir string
	verbose bool
)

// newRunner builds the command runner for a command; tests replace it.
var newRunner = func(stdout, stderr io.Writer, log *slog.Logger) runner.Runner {
	return &runner.Exec{Stdout: stdout, Stderr: stderr, Log: log}
}

// hostOS is the platform recorded in the snapshot; tests replace it.
var hostOS = platform.Host()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` post-install hook. Builds the iOS XCFramework and Android static
libraries with uniffi-bindgen-react-native, patches the generated C++ bindings,
and verifies the installed package. Running without a subcommand is the same
as "run".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInstall,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, config.KeyRoot, "", "Package root (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, config.KeyVerbose, "v", false, "Log every spawned command to stderr")
}

// Execute runs the root command with build info injected via ldflags.
// Errors from the install sequence have already been printed; anything else
// is printed here. A panic is reported as an unexpected error.
func Execute(version, commit, date string) (err error) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "[FAIL] Unexpected error: %v\n", r)
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()

	err = rootCmd.Execute()
	var fe *postinstall.FatalError
	if err != nil && !errors.As(err, &fe) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// capture builds the environment snapshot for cmd, honoring its flags.
func capture(cmd *cobra.Command) (config.Snapshot, error) {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return config.Snapshot{}, err
	}
	return config.Capture(v, hostOS)
}

// logger returns a debug logger on stderr when --verbose is set.
func logger(cmd *cobra.Command, env config.Snapshot) *slog.Logger {
	if !env.Verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// stdio returns the command's output writers.
func stdio(cmd *cobra.Command) (io.Writer, io.Writer) {
	return cmd.OutOrStdout(), cmd.ErrOrStderr()
}
