package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is a statesman.TransitionLog backed by a PostgreSQL table. States
// are persisted as text, so S must be a string kind. Models are opaque to
// the store; the key function maps a model to the identifier transitions
// are recorded under.
type Store[M any, S ~string] struct {
	pool *pgxpool.Pool
	key  func(M) string
}

// New creates a transition log writing to the state_transitions table.
// Run Migrate first to create the schema.
func New[M any, S ~string](pool *pgxpool.Pool, key func(M) string) (*Store[M, S], error) {
	if pool == nil {
		return nil, ErrNilPool
	}
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	return &Store[M, S]{pool: pool, key: key}, nil
}

// LatestState returns the most recently recorded target state for the
// model, ordered by insertion sequence so same-timestamp records resolve
// deterministically.
func (s *Store[M, S]) LatestState(ctx context.Context, model M) (S, bool, error) {
	var state S
	err := s.pool.QueryRow(ctx,
		`SELECT to_state FROM state_transitions WHERE model_id = $1 ORDER BY seq DESC LIMIT 1`,
		s.key(model),
	).Scan(&state)
	if errors.Is(err, pgx.ErrNoRows) {
		var zero S
		return zero, false, nil
	}
	if err != nil {
		var zero S
		return zero, false, fmt.Errorf("query latest state: %w", err)
	}
	return state, true, nil
}

// RecordTransition appends a transition record. Each call inserts a new
// row; the store does not deduplicate concurrent double-persists. Callers
// needing at-most-one-in-flight-transition-per-model can add a partial
// unique index over (model_id, to_state) or serialize on the model row.
func (s *Store[M, S]) RecordTransition(ctx context.Context, model M, from, to S) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO state_transitions (id, model_id, from_state, to_state) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), s.key(model), string(from), string(to),
	)
	if err != nil {
		return fmt.Errorf("record transition: %w", err)
	}
	return nil
}
