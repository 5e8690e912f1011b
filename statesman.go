package statesman

import (
	"context"
)

// Phase identifies when a transition callback runs relative to the
// persistence call.
type Phase string

const (
	// PhaseBefore callbacks run after validation and before the transition
	// is recorded. A failure aborts the transition.
	PhaseBefore Phase = "before"
	// PhaseAfter callbacks run once the transition has been recorded.
	// A failure surfaces to the caller but does not undo the record.
	PhaseAfter Phase = "after"
)

// Guard decides whether a specific transition is allowed for a model.
// Guards must be pure predicates; they run on every CanTransitionTo and
// TransitionTo call.
type Guard[M any] func(ctx context.Context, model M) bool

// Callback executes side effects around a transition. Returning an error
// from a before-callback prevents the transition from being recorded.
type Callback[M any] func(ctx context.Context, model M) error

// TransitionLog is the persistence port the machine derives state from.
// The machine holds no per-model state of its own: the latest recorded
// target state is the current state, and RecordTransition is the atomic
// commit point of every transition.
//
// RecordTransition is not required to be idempotent. Two concurrent
// transitions for the same model can both validate against a stale state
// and both append; deduplication, if needed, belongs to the log
// implementation (e.g. a unique index or optimistic locking) or to the
// caller.
type TransitionLog[M any, S comparable] interface {
	// LatestState returns the most recently recorded target state for the
	// model. The boolean reports whether any transition has been recorded.
	LatestState(ctx context.Context, model M) (S, bool, error)

	// RecordTransition durably appends a transition record.
	RecordTransition(ctx context.Context, model M, from, to S) error
}
