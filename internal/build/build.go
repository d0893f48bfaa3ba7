// Package build runs the generator's per-platform native builds.
//
// The two platforms fail differently: an iOS build failure aborts the
// install, an Android build failure is reported and tolerated.
package build

import (
	"context"
	"fmt"
	"io"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/config"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/generator"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/runner"
)

// Builder runs platform builds for one package root.
type Builder struct {
	Env    config.Snapshot
	Runner runner.Runner
	Tool   generator.Tool
	Stdout io.Writer
	Stderr io.Writer
}

// IOS builds the XCFramework. Hosts other than macOS are skipped without
// running anything. A failed build is returned as an error.
func (b *Builder) IOS(ctx context.Context) error {
	if !b.Env.Platform.CanBuildApple() {
		fmt.Fprintln(b.Stdout, "\n[SKIP] iOS build (not on macOS)")
		return nil
	}

	fmt.Fprintln(b.Stdout, "\nBuilding iOS libraries...")
	if err := b.run(ctx, "ios"); err != nil {
		return fmt.Errorf("failed to build iOS libraries: %w", err)
	}
	fmt.Fprintln(b.Stdout, "[ OK ] iOS libraries built")
	return nil
}

// Android builds the per-ABI static libraries when an NDK is configured.
// Failures are printed as warnings and never returned.
func (b *Builder) Android(ctx context.Context) {
	fmt.Fprintln(b.Stdout, "\nBuilding Android libraries...")

	if !b.Env.NDKPresent {
		fmt.Fprintln(b.Stdout, "[SKIP] Android NDK not found. Skipping Android build.")
		fmt.Fprintln(b.Stdout, "       Set ANDROID_NDK_ROOT or NDK_HOME to build Android libraries.")
		return
	}

	if err := b.run(ctx, "android"); err != nil {
		fmt.Fprintf(b.Stderr, "[WARN] Android build failed: %v\n", err)
		fmt.Fprintln(b.Stderr, "       This may be due to missing Android NDK or Rust toolchains.")
		return
	}
	fmt.Fprintln(b.Stdout, "[ OK ] Android libraries built")
}

// run resolves the generator invocation and runs `build <target> --and-generate`
// in the package root with output streamed to the console.
func (b *Builder) run(ctx context.Context, target string) error {
	inv := generator.Resolve(ctx, b.Runner, b.Tool, b.Env.PackageRoot)
	cmd := inv.Command(b.Env.PackageRoot, true, "build", target, "--and-generate")

	fmt.Fprintf(b.Stdout, "Running: %s\n", cmd)
	return runner.RunChecked(ctx, b.Runner, cmd)
}
