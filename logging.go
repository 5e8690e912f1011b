package statesman

import (
	"context"
	"log/slog"
)

// loggingLog decorates a TransitionLog with structured logging so hosts
// get a transition audit trail without the machine itself logging
// anything.
type loggingLog[M any, S comparable] struct {
	next TransitionLog[M, S]
	log  *slog.Logger
}

// NewLoggingLog wraps next so every recorded transition is logged at info
// level and every log failure at error level. A nil logger falls back to
// slog.Default().
func NewLoggingLog[M any, S comparable](next TransitionLog[M, S], log *slog.Logger) TransitionLog[M, S] {
	if log == nil {
		log = slog.Default()
	}
	return &loggingLog[M, S]{next: next, log: log}
}

func (l *loggingLog[M, S]) LatestState(ctx context.Context, model M) (S, bool, error) {
	state, ok, err := l.next.LatestState(ctx, model)
	if err != nil {
		l.log.ErrorContext(ctx, "failed to query latest state",
			slog.Any("model", model), slog.Any("error", err))
	}
	return state, ok, err
}

func (l *loggingLog[M, S]) RecordTransition(ctx context.Context, model M, from, to S) error {
	if err := l.next.RecordTransition(ctx, model, from, to); err != nil {
		l.log.ErrorContext(ctx, "failed to record transition",
			slog.Any("model", model), slog.Any("from", from), slog.Any("to", to),
			slog.Any("error", err))
		return err
	}
	l.log.InfoContext(ctx, "transition recorded",
		slog.Any("model", model), slog.Any("from", from), slog.Any("to", to))
	return nil
}
