package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrNoTransition = errors.New("no transition defined")
	ErrRejected     = errors.New("transition rejected by guards")
)

// TransitionError reports why Fire left the state unchanged.
type TransitionError struct {
	State string
	Event string
	Err   error
}

func newTransitionError[S, E comparable](state S, event E, err error) *TransitionError {
	return &TransitionError{State: fmt.Sprint(state), Event: fmt.Sprint(event), Err: err}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: state %q, event %q", e.Err, e.State, e.Event)
}

func (e *TransitionError) Unwrap() error { return e.Err }
