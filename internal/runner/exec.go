package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// Exec runs commands as child processes.
type Exec struct {
	// Stdout and Stderr receive streamed output; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Log receives debug traces of every spawn; nil discards them.
	Log *slog.Logger
}

// Run starts cmd, streams or captures its output, and waits for it.
func (e *Exec) Run(ctx context.Context, cmd Command) (*Result, error) {
	log := e.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	path, err := exec.LookPath(cmd.Name)
	if err != nil {
		log.Debug("command not found", slog.String("cmd", cmd.Name))
		return nil, fmt.Errorf("%s not found in PATH: %w", cmd.Name, err)
	}

	c := exec.CommandContext(ctx, path, cmd.Args...)
	c.Dir = cmd.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	if cmd.Stream {
		stdout := e.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		stderr := e.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		c.Stdout = io.MultiWriter(stdout, &stdoutBuf)
		c.Stderr = io.MultiWriter(stderr, &stderrBuf)
	} else {
		c.Stdout = &stdoutBuf
		c.Stderr = &stderrBuf
	}

	log.Debug("exec `cmd` in `dir`",
		slog.String("cmd", cmd.String()),
		slog.String("dir", cmd.Dir),
	)
	err = c.Run()

	result := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			log.Debug("command exited non-zero",
				slog.String("cmd", cmd.String()),
				slog.Int("code", result.ExitCode),
			)
			return result, nil
		}
		log.Error("failed `cmd` in `dir` with `error`",
			slog.String("cmd", cmd.String()),
			slog.String("dir", cmd.Dir),
			slog.String("error", err.Error()),
		)
		return result, fmt.Errorf("running %s: %w", cmd.Name, err)
	}

	return result, nil
}

// ExitError describes a command that ran but exited non-zero.
type ExitError struct {
	Command Command
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed: %s (exit status %d)", e.Command, e.Code)
}

// RunChecked runs cmd and folds a non-zero exit into an *ExitError, so
// callers that only care about success get a single error value.
func RunChecked(ctx context.Context, r Runner, cmd Command) error {
	result, err := r.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if !result.Success() {
		code := -1
		if result != nil {
			code = result.ExitCode
		}
		return &ExitError{Command: cmd, Code: code}
	}
	return nil
}
