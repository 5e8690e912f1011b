package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// record is the document shape of a persisted transition.
type record struct {
	ID         string    `bson:"_id"`
	ModelID    string    `bson:"model_id"`
	FromState  string    `bson:"from_state"`
	ToState    string    `bson:"to_state"`
	RecordedAt time.Time `bson:"recorded_at"`
}

// Store is a statesman.TransitionLog backed by a MongoDB collection.
// States are persisted as strings, so S must be a string kind; the key
// function maps a model to the identifier transitions are recorded under.
type Store[M any, S ~string] struct {
	coll *mongo.Collection
	key  func(M) string
}

// New creates a transition log over the given collection.
func New[M any, S ~string](coll *mongo.Collection, key func(M) string) (*Store[M, S], error) {
	if coll == nil {
		return nil, ErrNilCollection
	}
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	return &Store[M, S]{coll: coll, key: key}, nil
}

// EnsureIndexes creates the (model_id, recorded_at) index LatestState
// sorts on. Call once at startup.
func (s *Store[M, S]) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "model_id", Value: 1}, {Key: "recorded_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("ensure transition indexes: %w", err)
	}
	return nil
}

// LatestState returns the target state of the most recent document for
// the model, or false when none exists.
func (s *Store[M, S]) LatestState(ctx context.Context, model M) (S, bool, error) {
	var rec record
	err := s.coll.FindOne(ctx,
		bson.M{"model_id": s.key(model)},
		options.FindOne().SetSort(bson.D{{Key: "recorded_at", Value: -1}, {Key: "_id", Value: -1}}),
	).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		var zero S
		return zero, false, nil
	}
	if err != nil {
		var zero S
		return zero, false, fmt.Errorf("query latest state: %w", err)
	}
	return S(rec.ToState), true, nil
}

// RecordTransition inserts a transition document. Each call inserts a new
// document; the store does not deduplicate concurrent double-persists.
func (s *Store[M, S]) RecordTransition(ctx context.Context, model M, from, to S) error {
	_, err := s.coll.InsertOne(ctx, record{
		ID:         uuid.NewString(),
		ModelID:    s.key(model),
		FromState:  string(from),
		ToState:    string(to),
		RecordedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("record transition: %w", err)
	}
	return nil
}
