// Package statemachine provides a small generic finite state machine. The
// field package uses it to track how a user has interacted with a control.
//
// States and events are any comparable types, usually string constants:
//
//	type phase string
//	type signal string
//
//	m := statemachine.New[phase, signal]("pristine",
//	    statemachine.From[phase, signal]("pristine", "touched", "focus"),
//	    statemachine.On[phase, signal]("blur", "settled", []phase{"pristine", "touched"}),
//	)
//	_ = m.Fire("focus")
//
// Fire returns a *TransitionError wrapping ErrNoTransition when nothing is
// registered for the current state and event, and ErrRejected when every
// candidate was vetoed by a guard. Actions run before the state changes and
// abort the transition on error.
package statemachine
