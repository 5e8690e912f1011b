package statesman

import (
	"context"
	"fmt"
	"sync"
)

// pair is the ordered (from, to) key for guard and callback lookups.
// Direction matters: (A,B) and (B,A) index independently.
type pair[S comparable] struct {
	from S
	to   S
}

// Machine validates and executes state transitions for models of type M
// over states of type S. The legal-transition graph and the initial state
// are fixed at construction; guards and callbacks may be registered
// afterwards, though registration should finish before transition traffic
// starts if deterministic behavior is required.
//
// The machine holds no per-model state. Every operation derives the
// current state from the TransitionLog, so a single Machine instance
// serves any number of models concurrently.
type Machine[M any, S comparable] struct {
	initial S
	rules   map[S]map[S]struct{}
	log     TransitionLog[M, S]

	mu     sync.RWMutex
	guards map[pair[S]]Guard[M]
	before map[pair[S]]Callback[M]
	after  map[pair[S]]Callback[M]
}

// CurrentState returns the latest recorded state for the model, or the
// initial state when the log holds no record for it.
func (m *Machine[M, S]) CurrentState(ctx context.Context, model M) (S, error) {
	state, ok, err := m.log.LatestState(ctx, model)
	if err != nil {
		var zero S
		return zero, err
	}
	if !ok {
		return m.initial, nil
	}
	return state, nil
}

// AddGuard registers the guard for the ordered (from, to) pair, replacing
// any guard registered earlier for the same pair.
func (m *Machine[M, S]) AddGuard(from, to S, guard Guard[M]) error {
	if guard == nil {
		return ErrNilGuard
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.guards[pair[S]{from, to}] = guard
	return nil
}

// AddCallback registers the callback for the ordered (from, to) pair and
// phase, replacing any callback registered earlier for the same pair and
// phase.
func (m *Machine[M, S]) AddCallback(from, to S, phase Phase, callback Callback[M]) error {
	if callback == nil {
		return ErrNilCallback
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch phase {
	case PhaseBefore:
		m.before[pair[S]{from, to}] = callback
	case PhaseAfter:
		m.after[pair[S]{from, to}] = callback
	default:
		return ErrInvalidPhase
	}
	return nil
}

// CanTransitionTo reports whether the model may move to target from its
// current state: the rule table must list the move and the guard for the
// pair, if any, must accept the model.
func (m *Machine[M, S]) CanTransitionTo(ctx context.Context, model M, target S) (bool, error) {
	current, err := m.CurrentState(ctx, model)
	if err != nil {
		return false, err
	}
	return m.allowed(ctx, model, current, target), nil
}

// TransitionTo moves the model to target. The current state is re-derived
// and re-validated, then the before-callback runs, the transition is
// recorded, and the after-callback runs.
//
// A before-callback or log failure means the transition did not happen.
// An after-callback failure surfaces to the caller, but the record is
// already committed; compensation is the caller's responsibility.
func (m *Machine[M, S]) TransitionTo(ctx context.Context, model M, target S) error {
	current, err := m.CurrentState(ctx, model)
	if err != nil {
		return err
	}
	if !m.allowed(ctx, model, current, target) {
		return newTransitionError(model, current, target)
	}

	key := pair[S]{current, target}
	if cb := m.callback(m.before, key); cb != nil {
		if err := cb(ctx, model); err != nil {
			return fmt.Errorf("before callback %v->%v: %w", current, target, err)
		}
	}
	if err := m.log.RecordTransition(ctx, model, current, target); err != nil {
		return err
	}
	if cb := m.callback(m.after, key); cb != nil {
		if err := cb(ctx, model); err != nil {
			return fmt.Errorf("after callback %v->%v: %w", current, target, err)
		}
	}
	return nil
}

// allowed checks the rule table and the guard for a concrete
// current→target pair. Guards run outside the registry lock so a slow
// guard cannot block registration.
func (m *Machine[M, S]) allowed(ctx context.Context, model M, current, target S) bool {
	if _, ok := m.rules[current][target]; !ok {
		return false
	}

	m.mu.RLock()
	guard := m.guards[pair[S]{current, target}]
	m.mu.RUnlock()

	return guard == nil || guard(ctx, model)
}

func (m *Machine[M, S]) callback(registry map[pair[S]]Callback[M], key pair[S]) Callback[M] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return registry[key]
}
