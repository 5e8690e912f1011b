// Package mongo provides a statesman.TransitionLog backed by a MongoDB
// collection using the official driver v2.
//
// Transitions are append-only documents; the latest document per model
// (by recorded_at, _id as tiebreak) is the current state. Connect and
// ConnectDatabase handle retry/ping bootstrap, and EnsureIndexes creates
// the sort index LatestState depends on.
//
// Usage:
//
//	var cfg mongostore.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongostore.ConnectDatabase(ctx, cfg)
//	if err != nil { ... }
//
//	log, err := mongostore.New[*Order, string](db.Collection("state_transitions"),
//		func(o *Order) string { return o.ID })
//	if err != nil { ... }
//	if err := log.EnsureIndexes(ctx); err != nil { ... }
package mongo
