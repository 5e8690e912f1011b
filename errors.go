package statesman

import (
	"errors"
	"fmt"
)

var (
	ErrNilTransitionLog = errors.New("transition log cannot be nil")
	ErrNilGuard         = errors.New("guard cannot be nil")
	ErrNilCallback      = errors.New("callback cannot be nil")
	ErrInvalidPhase     = errors.New("phase must be PhaseBefore or PhaseAfter")
)

// TransitionError indicates TransitionTo was asked for a move the rule
// table does not permit or a guard rejected. It is raised before any
// callback or persistence call, so no side effect has occurred.
type TransitionError struct {
	Model string
	From  string
	To    string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("model %s cannot transition from %s to %s", e.Model, e.From, e.To)
}

func newTransitionError(model, from, to any) *TransitionError {
	return &TransitionError{
		Model: fmt.Sprintf("%v", model),
		From:  fmt.Sprintf("%v", from),
		To:    fmt.Sprintf("%v", to),
	}
}

// IsTransitionNotAllowedError reports whether err is a TransitionError,
// letting callers distinguish a rejected transition from a collaborator
// or callback failure.
func IsTransitionNotAllowedError(err error) bool {
	var e *TransitionError
	return errors.As(err, &e)
}
