package postinstall

import "fmt"

// Stage identifies the gate that stopped the install.
type Stage string

const (
	StagePrerequisites Stage = "prerequisites"
	StageSources       Stage = "sources"
	StageBuild         Stage = "build"
	StageVerify        Stage = "verify"
)

// FatalError is returned by Sequencer.Run after the failure has already been
// reported to the user.
type FatalError struct {
	Stage Stage
	Err   error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("install failed at %s: %v", e.Stage, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func fatal(stage Stage, format string, args ...any) *FatalError {
	return &FatalError{Stage: stage, Err: fmt.Errorf(format, args...)}
}
