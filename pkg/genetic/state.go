package genetic

import (
	"errors"
	"fmt"
)

// State is the phase of the generational loop.
type State int

const (
	Initialized State = iota
	Evaluating
	Selecting
	Recombining
	Mutating
	Reevaluating
	Archiving
	Terminated
	Failed
)

var stateNames = map[State]string{
	Initialized:  "Initialized",
	Evaluating:   "Evaluating",
	Selecting:    "Selecting",
	Recombining:  "Recombining",
	Mutating:     "Mutating",
	Reevaluating: "Re-evaluating",
	Archiving:    "Archiving",
	Terminated:   "Terminated",
	Failed:       "Failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrStop may be returned by a generation hook to end the run early. The run
// then terminates without error.
var ErrStop = errors.New("stop requested")

// RunError reports a run aborted by a failure. Archived entries of the
// completed generations remain valid.
type RunError struct {
	// Completed is the number of generations fully completed before the failure.
	Completed int
	// State is the phase that failed.
	State State
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run failed while %s after %d completed generations: %v", e.State, e.Completed, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
