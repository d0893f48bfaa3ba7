package postinstall

import (
	"context"
	"os"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/runner"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/runner/runnertest"
)

// removingRunner deletes path after the command line `line` runs.
type removingRunner struct {
	stub *runnertest.Stub
	line string
	path string
}

func (r *removingRunner) Run(ctx context.Context, cmd runner.Command) (*runner.Result, error) {
	result, err := r.stub.Run(ctx, cmd)
	if cmd.String() == r.line {
		_ = os.Remove(r.path)
	}
	return result, err
}
