package statemachine

// Option configures a Machine during construction.
type Option[S, E comparable] func(*Machine[S, E])

// TransitionOption attaches guards or actions to a transition.
type TransitionOption[S, E comparable] func(*transition[S, E])

// From adds a single transition.
func From[S, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		m.Add(from, to, event, opts...)
	}
}

// On routes event from every state in froms to the same target.
func On[S, E comparable](event E, to S, froms []S, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		for _, from := range froms {
			m.Add(from, to, event, opts...)
		}
	}
}

// WithGuards adds guards to a transition. Nil guards are skipped.
func WithGuards[S, E comparable](guards ...Guard[S, E]) TransitionOption[S, E] {
	return func(t *transition[S, E]) {
		for _, g := range guards {
			if g != nil {
				t.guards = append(t.guards, g)
			}
		}
	}
}

// WithActions adds actions to a transition. Nil actions are skipped.
func WithActions[S, E comparable](actions ...Action[S, E]) TransitionOption[S, E] {
	return func(t *transition[S, E]) {
		for _, a := range actions {
			if a != nil {
				t.actions = append(t.actions, a)
			}
		}
	}
}
