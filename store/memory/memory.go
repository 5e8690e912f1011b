package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is a single persisted transition.
type Record[S comparable] struct {
	ID         uuid.UUID
	From       S
	To         S
	RecordedAt time.Time
}

// Store keeps transition history in process memory, for tests and local
// development. Models are used directly as map keys, so M must be
// comparable; use a pointer-free identifier type (or the model's ID) as M
// when the model itself carries slices or maps.
type Store[M comparable, S comparable] struct {
	mu      sync.RWMutex
	history map[M][]Record[S]
}

// New creates an empty in-memory transition log.
func New[M comparable, S comparable]() *Store[M, S] {
	return &Store[M, S]{
		history: make(map[M][]Record[S]),
	}
}

// LatestState returns the target state of the most recent record for the
// model, or false when no transition has been recorded for it.
func (s *Store[M, S]) LatestState(ctx context.Context, model M) (S, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.history[model]
	if len(records) == 0 {
		var zero S
		return zero, false, nil
	}
	return records[len(records)-1].To, true, nil
}

// RecordTransition appends a transition record for the model.
func (s *Store[M, S]) RecordTransition(ctx context.Context, model M, from, to S) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history[model] = append(s.history[model], Record[S]{
		ID:         uuid.New(),
		From:       from,
		To:         to,
		RecordedAt: time.Now().UTC(),
	})
	return nil
}

// History returns a copy of the model's transition records in append
// order.
func (s *Store[M, S]) History(model M) []Record[S] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.history[model]
	out := make([]Record[S], len(records))
	copy(out, records)
	return out
}
