// Package statesman implements a persistence-backed finite-state-machine
// runtime for arbitrary domain models.
//
// Unlike in-memory state machines that track their own current state, a
// statesman Machine derives the current state of every model from a
// pluggable TransitionLog. The machine owns the rules (which moves are
// legal, which guards gate them, which callbacks fire around them) while
// the log owns the history, so one Machine instance can govern any number
// of models at once.
//
// # Architecture
//
// Four pieces cooperate:
//
//  1. Rules – an immutable adjacency table mapping each state to the
//     states reachable from it.
//  2. Guards – per-(from, to) predicates consulted during validation.
//  3. Callbacks – per-(from, to) hooks run before and after a transition
//     is recorded.
//  4. TransitionLog – the persistence port: query the latest recorded
//     state, append a transition record.
//
// A successful TransitionTo always follows the same protocol: re-derive
// the current state, validate against rules and guard, run the
// before-callback, record the transition, run the after-callback. The
// record call is the commit point; if it fails the transition did not
// happen and the after-callback never runs.
//
// # Usage
//
//	type Order struct {
//	    ID     string
//	    Amount int
//	}
//
//	const (
//	    Pending   = "pending"
//	    Confirmed = "confirmed"
//	    Cancelled = "cancelled"
//	)
//
//	machine := statesman.MustNew[*Order](Pending, log,
//	    statesman.WithRules[*Order](statesman.Rules[string]{
//	        Pending:   {Confirmed, Cancelled},
//	        Confirmed: {Cancelled},
//	    }),
//	    statesman.WithGuard(Pending, Confirmed, func(ctx context.Context, o *Order) bool {
//	        return o.Amount > 0
//	    }),
//	)
//
//	if err := machine.TransitionTo(ctx, order, Confirmed); err != nil { ... }
//
// Ready-made TransitionLog implementations live under store/: memory for
// tests and local development, postgres, redis and mongo for production
// backends. Any type with the two port methods works.
//
// # Error Handling
//
// A rejected transition surfaces as *TransitionError, detectable via
// IsTransitionNotAllowedError. Collaborator and callback failures
// propagate to the caller; the machine never retries, logs or suppresses.
// Note the asymmetry around the commit point: a before-callback failure
// prevents persistence, while an after-callback failure leaves the
// already-persisted record in place.
//
// # Concurrency
//
// The rule table is write-once and shared without synchronization; the
// guard and callback registries are RWMutex-guarded so registration and
// transition traffic may overlap safely. The machine takes no lock around
// the validate→before→record→after sequence: two concurrent TransitionTo
// calls for the same model can both validate against a stale state and
// both append. Serializing transitions per model, when required, belongs
// to the TransitionLog implementation or the caller.
package statesman
