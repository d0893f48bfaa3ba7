package postinstall

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/branding"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/build"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/config"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/generator"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/manifest"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/patch"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/runner"
)

// Sequencer runs the post-install steps against one captured environment.
type Sequencer struct {
	Env      config.Snapshot
	Runner   runner.Runner
	Manifest *manifest.FileManifest
	Stdout   io.Writer
	Stderr   io.Writer
}

// Run executes the install. It returns nil on success and when the install
// is deliberately skipped in CI; otherwise a *FatalError.
func (s *Sequencer) Run(ctx context.Context) error {
	fmt.Fprintf(s.Stdout, "%s post-install: building native libraries...\n", branding.DisplayName())

	if s.Env.SkipInCI() {
		fmt.Fprintln(s.Stdout, "[SKIP] Skipping native library builds in CI environment.")
		fmt.Fprintln(s.Stdout, "       Set BUILD_NATIVE_LIBS=1 to force builds in CI.")
		return nil
	}

	tool := s.tool()
	root := s.Env.PackageRoot

	if !generator.Available(ctx, s.Runner, tool, root) {
		fmt.Fprintf(s.Stderr, "[FAIL] %s not found!\n", tool.Generator)
		fmt.Fprintf(s.Stderr, "       Install it with: npm install -g %s\n", tool.Generator)
		fmt.Fprintln(s.Stderr, "       Or add it as a dependency in your project.")
		return fatal(StagePrerequisites, "%s not found", tool.Generator)
	}

	fmt.Fprintln(s.Stdout, "Checking source files...")
	if missing := s.Manifest.MissingSources(root); len(missing) > 0 {
		fmt.Fprintf(s.Stderr, "[FAIL] Missing source file: %s\n", missing[0])
		fmt.Fprintf(s.Stderr, "       This indicates a problem with the %s package.\n", branding.PackageName())
		return fatal(StageSources, "missing source file %s", missing[0])
	}
	fmt.Fprintln(s.Stdout, "[ OK ] All source files present")

	if err := s.build(ctx, tool); err != nil {
		s.reportBuildFailure(err)
		return &FatalError{Stage: StageBuild, Err: err}
	}

	fmt.Fprintln(s.Stdout, "\nVerifying installation...")
	report := s.Manifest.Verify(s.Stdout, root, s.Env.Platform)
	if !report.OK {
		fmt.Fprintln(s.Stderr, "\n[FAIL] Some required files are missing!")
		fmt.Fprintln(s.Stderr, "The installation may have failed.")
		return fatal(StageVerify, "missing required files: %s", strings.Join(report.Missing(), ", "))
	}

	fmt.Fprintln(s.Stdout, "\n[ OK ] Installation completed successfully!")
	fmt.Fprintf(s.Stdout, "%s is ready to use!\n\n", branding.DisplayName())
	return nil
}

// build patches the generated bindings, then runs the iOS build (fatal on
// failure) and the Android build (tolerated).
func (s *Sequencer) build(ctx context.Context, tool generator.Tool) error {
	if _, err := patch.FixIncludePath(s.Stdout, s.Env.PackageRoot); err != nil {
		return err
	}

	b := &build.Builder{
		Env:    s.Env,
		Runner: s.Runner,
		Tool:   tool,
		Stdout: s.Stdout,
		Stderr: s.Stderr,
	}
	if err := b.IOS(ctx); err != nil {
		return err
	}
	b.Android(ctx)
	return nil
}

func (s *Sequencer) reportBuildFailure(err error) {
	w := s.Stderr
	fmt.Fprintf(w, "\n[FAIL] Failed to complete installation: %v\n", err)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "This may be due to:")
	fmt.Fprintf(w, "   - Missing %s (install globally)\n", s.tool().Generator)
	fmt.Fprintln(w, "   - Missing Android NDK (for Android builds)")
	fmt.Fprintln(w, "   - Missing Xcode/iOS toolchain (for iOS builds on macOS)")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Report issues at: %s\n", branding.IssuesURL())
}

// tool returns the configured runner/generator pair, falling back to the
// branded defaults for unset fields.
func (s *Sequencer) tool() generator.Tool {
	t := generator.DefaultTool()
	if s.Env.Runner != "" {
		t.Runner = s.Env.Runner
	}
	if s.Env.Generator != "" {
		t.Generator = s.Env.Generator
	}
	return t
}
