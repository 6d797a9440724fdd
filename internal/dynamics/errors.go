package dynamics

import (
	"errors"
	"fmt"
)

// Domain errors for simulation runs.
var (
	// ErrInvalidState indicates a NaN or Inf appeared in the state.
	ErrInvalidState = errors.New("dynamics: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates the initial state does not match
	// the system dimension.
	ErrDimensionMismatch = errors.New("dynamics: state dimension does not match system")

	// ErrBadTimepoints indicates an empty or non-increasing timepoint
	// sequence.
	ErrBadTimepoints = errors.New("dynamics: timepoints must be non-empty and increasing")

	// ErrNotAdaptive indicates adaptive stepping was requested of an
	// integrator without an error estimate.
	ErrNotAdaptive = errors.New("dynamics: integrator does not support adaptive stepping")
)

// StepError wraps an error with the step and simulated time at which
// integration failed.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
