package generator

import (
	"context"
	"strings"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/branding"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/runner"
)

// Tool names the package runner and generator binary to probe.
type Tool struct {
	Runner    string
	Generator string
}

// DefaultTool returns the branded runner/generator pair.
func DefaultTool() Tool {
	return Tool{Runner: branding.PackageRunner(), Generator: branding.Generator()}
}

// Invocation is a resolved way of calling the generator.
type Invocation struct {
	// Prefix is the command that precedes generator arguments, e.g.
	// ["npx", "uniffi-bindgen-react-native"] or ["uniffi-bindgen-react-native"].
	Prefix []string
}

// ViaRunner returns the runner-prefixed invocation.
func (t Tool) ViaRunner() Invocation {
	return Invocation{Prefix: []string{t.Runner, t.Generator}}
}

// Direct returns the globally installed invocation.
func (t Tool) Direct() Invocation {
	return Invocation{Prefix: []string{t.Generator}}
}

// Command builds the runner.Command for args under dir.
func (i Invocation) Command(dir string, stream bool, args ...string) runner.Command {
	full := append(append([]string{}, i.Prefix[1:]...), args...)
	return runner.Command{Name: i.Prefix[0], Args: full, Dir: dir, Stream: stream}
}

// UsesRunner reports whether the invocation goes through the package runner.
func (i Invocation) UsesRunner() bool {
	return len(i.Prefix) > 1
}

// String renders the invocation prefix, e.g. "npx uniffi-bindgen-react-native".
func (i Invocation) String() string {
	return strings.Join(i.Prefix, " ")
}

// Available reports whether the generator answers --help either through the
// package runner or as a direct binary. Errors are never returned.
func Available(ctx context.Context, r runner.Runner, t Tool, dir string) bool {
	if probe(ctx, r, t.ViaRunner(), dir) {
		return true
	}
	return probe(ctx, r, t.Direct(), dir)
}

// Resolve picks the invocation for build commands: the runner form if its
// --help probe succeeds, otherwise the direct form. It probes on its own
// even when Available was just called.
func Resolve(ctx context.Context, r runner.Runner, t Tool, dir string) Invocation {
	if probe(ctx, r, t.ViaRunner(), dir) {
		return t.ViaRunner()
	}
	return t.Direct()
}

func probe(ctx context.Context, r runner.Runner, inv Invocation, dir string) bool {
	return runner.RunChecked(ctx, r, inv.Command(dir, false, "--help")) == nil
}
