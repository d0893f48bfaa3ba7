package runner

import (
	"context"
	"strings"
)

// Runner starts an external command and waits for it to finish.
type Runner interface {
	// Run executes cmd. A command that starts and exits non-zero is reported
	// through Result.ExitCode with a nil error; the error is reserved for
	// commands that could not be started at all.
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string

	// Stream copies the child's stdout/stderr to the runner's writers.
	// When false the output is only captured.
	Stream bool
}

// String renders the command line as a user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result captures the outcome of a command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited zero.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}
