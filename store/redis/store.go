package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Record is the JSON shape of a history entry.
type Record struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Store is a statesman.TransitionLog backed by Redis. The latest state
// lives in a per-model string key and the full history in a per-model
// list; both are written in one transaction pipeline so the commit stays
// atomic.
type Store[M any, S ~string] struct {
	client *redis.Client
	key    func(M) string
	prefix string
}

// New creates a transition log over the given client. The key function
// maps a model to the identifier its transitions are recorded under;
// prefix namespaces all keys (empty means "statesman").
func New[M any, S ~string](client *redis.Client, key func(M) string, prefix string) (*Store[M, S], error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	if prefix == "" {
		prefix = "statesman"
	}
	return &Store[M, S]{client: client, key: key, prefix: prefix}, nil
}

// LatestState returns the state stored under the model's latest key, or
// false when no transition has been recorded for it.
func (s *Store[M, S]) LatestState(ctx context.Context, model M) (S, bool, error) {
	val, err := s.client.Get(ctx, s.latestKey(model)).Result()
	if errors.Is(err, redis.Nil) {
		var zero S
		return zero, false, nil
	}
	if err != nil {
		var zero S
		return zero, false, fmt.Errorf("query latest state: %w", err)
	}
	return S(val), true, nil
}

// RecordTransition sets the latest key and pushes a history entry in one
// transaction pipeline.
func (s *Store[M, S]) RecordTransition(ctx context.Context, model M, from, to S) error {
	entry, err := json.Marshal(Record{
		From:       string(from),
		To:         string(to),
		RecordedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode transition record: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.latestKey(model), string(to), 0)
	pipe.RPush(ctx, s.historyKey(model), entry)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record transition: %w", err)
	}
	return nil
}

// History returns the model's transition records in append order.
func (s *Store[M, S]) History(ctx context.Context, model M) ([]Record, error) {
	raw, err := s.client.LRange(ctx, s.historyKey(model), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("query transition history: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for _, item := range raw {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decode transition record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Store[M, S]) latestKey(model M) string {
	return s.prefix + ":" + s.key(model) + ":latest"
}

func (s *Store[M, S]) historyKey(model M) string {
	return s.prefix + ":" + s.key(model) + ":history"
}
