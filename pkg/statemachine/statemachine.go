package statemachine

import (
	"fmt"
	"sync"
)

// Guard decides whether a transition may leave from on event.
type Guard[S, E comparable] func(from S, event E) bool

// Action runs before the state changes. Returning an error aborts the transition.
type Action[S, E comparable] func(from, to S, event E) error

type key[S, E comparable] struct {
	from  S
	event E
}

type transition[S, E comparable] struct {
	to      S
	guards  []Guard[S, E]
	actions []Action[S, E]
}

// Machine is a finite state machine over comparable states and events.
// It is safe for concurrent use.
type Machine[S, E comparable] struct {
	mu      sync.RWMutex
	initial S
	current S
	table   map[key[S, E]][]transition[S, E]
}

// New creates a machine in initial configured by opts.
func New[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		initial: initial,
		current: initial,
		table:   make(map[key[S, E]][]transition[S, E]),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state.
func (m *Machine[S, E]) Is(state S) bool {
	return m.Current() == state
}

// Add registers a transition. Transitions sharing from and event are tried in
// registration order; the first whose guards all pass is taken.
func (m *Machine[S, E]) Add(from, to S, event E, opts ...TransitionOption[S, E]) {
	t := transition[S, E]{to: to}
	for _, opt := range opts {
		opt(&t)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	k := key[S, E]{from: from, event: event}
	m.table[k] = append(m.table[k], t)
}

// Fire applies event to the current state.
func (m *Machine[S, E]) Fire(event E) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.find(event)
	if err != nil {
		return err
	}
	for _, action := range t.actions {
		if err := action(m.current, t.to, event); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}
	m.current = t.to
	return nil
}

// CanFire reports whether Fire(event) would find a transition.
func (m *Machine[S, E]) CanFire(event E) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.find(event)
	return err == nil
}

// Reset returns the machine to its initial state without running actions.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// find must be called with the lock held.
func (m *Machine[S, E]) find(event E) (*transition[S, E], error) {
	candidates := m.table[key[S, E]{from: m.current, event: event}]
	if len(candidates) == 0 {
		return nil, newTransitionError(m.current, event, ErrNoTransition)
	}
	for i := range candidates {
		if allow(candidates[i].guards, m.current, event) {
			return &candidates[i], nil
		}
	}
	return nil, newTransitionError(m.current, event, ErrRejected)
}

func allow[S, E comparable](guards []Guard[S, E], from S, event E) bool {
	for _, g := range guards {
		if !g(from, event) {
			return false
		}
	}
	return true
}
