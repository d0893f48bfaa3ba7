// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/runner"
)

// Response is the scripted outcome for one command line.
type Response struct {
	ExitCode int
	Stdout   string
	Err      error
}

// OK is a zero-exit response.
var OK = Response{}

// Fail returns a response that exits with code.
func Fail(code int) Response {
	return Response{ExitCode: code}
}

// Stub records every command and answers from a script keyed by the full
// command line (runner.Command.String()). Unscripted commands behave like a
// binary missing from PATH.
type Stub struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []runner.Command
}

// New returns an empty Stub.
func New() *Stub {
	return &Stub{responses: make(map[string]Response)}
}

// On scripts the response for line and returns the stub for chaining.
func (s *Stub) On(line string, resp Response) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[line] = resp
	return s
}

// Run implements runner.Runner.
func (s *Stub) Run(_ context.Context, cmd runner.Command) (*runner.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, cmd)

	resp, ok := s.responses[cmd.String()]
	if !ok {
		return nil, fmt.Errorf("%s not found in PATH", cmd.Name)
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &runner.Result{ExitCode: resp.ExitCode, Stdout: resp.Stdout}, nil
}

// Calls returns a copy of every command run so far.
func (s *Stub) Calls() []runner.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]runner.Command, len(s.calls))
	copy(out, s.calls)
	return out
}

// Lines returns the command lines run so far, in order.
func (s *Stub) Lines() []string {
	calls := s.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}

// Count returns how many recorded command lines contain substr.
func (s *Stub) Count(substr string) int {
	n := 0
	for _, line := range s.Lines() {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}
