package statesman

import (
	"fmt"
)

// Option configures a machine during construction.
type Option[M any, S comparable] func(*Machine[M, S]) error

// New creates a machine with the given initial state, transition log and
// options. The rule table defaults to empty, which forbids every
// transition until WithRules supplies one.
func New[M any, S comparable](initial S, log TransitionLog[M, S], opts ...Option[M, S]) (*Machine[M, S], error) {
	if log == nil {
		return nil, ErrNilTransitionLog
	}

	m := &Machine[M, S]{
		initial: initial,
		rules:   make(map[S]map[S]struct{}),
		log:     log,
		guards:  make(map[pair[S]]Guard[M]),
		before:  make(map[pair[S]]Callback[M]),
		after:   make(map[pair[S]]Callback[M]),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is like New but panics on error, for machines wired at startup
// where a misconfiguration should prevent the application from booting.
func MustNew[M any, S comparable](initial S, log TransitionLog[M, S], opts ...Option[M, S]) *Machine[M, S] {
	m, err := New(initial, log, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithRules sets the transition rule table. Later WithRules options merge
// into earlier ones, adding targets per state.
func WithRules[M any, S comparable](rules Rules[S]) Option[M, S] {
	return func(m *Machine[M, S]) error {
		for from, targets := range rules.compile() {
			set, ok := m.rules[from]
			if !ok {
				m.rules[from] = targets
				continue
			}
			for to := range targets {
				set[to] = struct{}{}
			}
		}
		return nil
	}
}

// WithGuard registers a guard for the ordered (from, to) pair.
func WithGuard[M any, S comparable](from, to S, guard Guard[M]) Option[M, S] {
	return func(m *Machine[M, S]) error {
		return m.AddGuard(from, to, guard)
	}
}

// WithCallback registers a callback for the ordered (from, to) pair and
// phase.
func WithCallback[M any, S comparable](from, to S, phase Phase, callback Callback[M]) Option[M, S] {
	return func(m *Machine[M, S]) error {
		return m.AddCallback(from, to, phase, callback)
	}
}

// WithBeforeCallback is shorthand for WithCallback with PhaseBefore.
func WithBeforeCallback[M any, S comparable](from, to S, callback Callback[M]) Option[M, S] {
	return WithCallback(from, to, PhaseBefore, callback)
}

// WithAfterCallback is shorthand for WithCallback with PhaseAfter.
func WithAfterCallback[M any, S comparable](from, to S, callback Callback[M]) Option[M, S] {
	return WithCallback(from, to, PhaseAfter, callback)
}
