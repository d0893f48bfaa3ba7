package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/branding"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/config"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/generator"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/manifest"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/runner"
	"github.com/spf13/cobra"
)

// lookPath finds host binaries for doctor; tests replace it.
var lookPath = exec.LookPath

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the native build prerequisites",
	Long: `Report what the install would see: CI flags, host platform, generator
reachability and version, Android NDK configuration, native toolchains, and
shipped source files. Nothing is built or modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := capture(cmd)
		if err != nil {
			return fmt.Errorf("reading environment: %w", err)
		}

		stdout, stderr := stdio(cmd)
		r := newRunner(stdout, stderr, logger(cmd, env))
		ctx := context.Background()

		runEnvironmentCheck(stdout, env)
		runGeneratorCheck(ctx, stdout, r, env)
		runToolchainCheck(ctx, stdout, r, env)
		return runSourcesCheck(stdout, env)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runEnvironmentCheck(w io.Writer, env config.Snapshot) {
	fmt.Fprintln(w, "Environment check:")
	fmt.Fprintf(w, "  [INFO] package root: %s\n", env.PackageRoot)
	fmt.Fprintf(w, "  [INFO] platform: %s\n", env.Platform)
	switch {
	case env.SkipInCI():
		fmt.Fprintln(w, "  [WARN] CI is set: install will skip native builds (set BUILD_NATIVE_LIBS=1 to force)")
	case env.CI:
		fmt.Fprintln(w, "  [ OK ] CI is set, BUILD_NATIVE_LIBS forces native builds")
	default:
		fmt.Fprintln(w, "  [ OK ] not running under CI")
	}
}

func runGeneratorCheck(ctx context.Context, w io.Writer, r runner.Runner, env config.Snapshot) {
	fmt.Fprintln(w, "Generator check:")

	tool := generator.Tool{Runner: env.Runner, Generator: env.Generator}
	var reachable []generator.Invocation
	for _, inv := range []generator.Invocation{tool.ViaRunner(), tool.Direct()} {
		if runner.RunChecked(ctx, r, inv.Command(env.PackageRoot, false, "--help")) == nil {
			fmt.Fprintf(w, "  [ OK ] %s\n", inv)
			reachable = append(reachable, inv)
		} else {
			fmt.Fprintf(w, "  [MISS] %s\n", inv)
		}
	}

	if len(reachable) == 0 {
		fmt.Fprintf(w, "         Install it with: npm install -g %s\n", tool.Generator)
		return
	}

	if builds := reachable[0]; builds.UsesRunner() {
		fmt.Fprintf(w, "  [INFO] builds run through %s\n", tool.Runner)
	} else {
		fmt.Fprintf(w, "  [INFO] builds use the global %s install\n", tool.Generator)
	}

	minimum := branding.MinGeneratorVersion()
	v, err := generator.Version(ctx, r, reachable[0], env.PackageRoot)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] could not determine version: %v\n", err)
		return
	}
	ok, err := generator.MeetsMinimum(v, minimum)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [WARN] %v\n", err)
	case ok:
		fmt.Fprintf(w, "  [ OK ] version %s (minimum %s)\n", v, minimum)
	default:
		fmt.Fprintf(w, "  [WARN] version %s is older than %s\n", v, minimum)
	}
}

func runToolchainCheck(ctx context.Context, w io.Writer, r runner.Runner, env config.Snapshot) {
	fmt.Fprintln(w, "Toolchain check:")

	if env.NDKPresent {
		fmt.Fprintln(w, "  [ OK ] Android NDK configured")
	} else {
		fmt.Fprintln(w, "  [MISS] Android NDK: set ANDROID_NDK_ROOT or NDK_HOME")
	}

	if env.Platform.CanBuildApple() {
		if runner.RunChecked(ctx, r, runner.Command{Name: "xcodebuild", Args: []string{"-version"}}) == nil {
			fmt.Fprintln(w, "  [ OK ] Xcode")
		} else {
			fmt.Fprintln(w, "  [MISS] Xcode: install Xcode and run xcode-select --install")
		}
	} else {
		fmt.Fprintln(w, "  [SKIP] Xcode (not on macOS)")
	}

	checkBinary(w, "cargo")
	checkBinary(w, "rustup")
}

func checkBinary(w io.Writer, name string) {
	path, err := lookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}

func runSourcesCheck(w io.Writer, env config.Snapshot) error {
	fmt.Fprintln(w, "Sources check:")

	files, err := manifest.Default()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return err
	}

	missing := files.MissingSources(env.PackageRoot)
	if len(missing) == 0 {
		fmt.Fprintf(w, "  [ OK ] all %d shipped source files present\n", len(files.Sources))
		return nil
	}
	for _, rel := range missing {
		fmt.Fprintf(w, "  [MISS] %s\n", rel)
	}
	return nil
}
