// Package postgres provides a statesman.TransitionLog backed by a
// PostgreSQL table, using the pgx/v5 driver for connectivity and goose/v3
// for schema migrations.
//
// The package follows a small, composable surface:
//
//   - Config – env-tagged settings for pool limits, retries and the
//     migrations table name.
//   - Connect – opens a *pgxpool.Pool from Config, retrying until the
//     database becomes available.
//   - Migrate – applies the embedded state_transitions schema before the
//     host starts transition traffic.
//   - New – wraps the pool as a transition log for a concrete model type,
//     given a function mapping a model to its identifier.
//
// Usage:
//
//	var cfg postgres.Config
//	config.MustLoad(&cfg)
//
//	pool, err := postgres.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//
//	if err := postgres.Migrate(ctx, pool, cfg, slog.Default()); err != nil { ... }
//
//	log, err := postgres.New[*Order, string](pool, func(o *Order) string { return o.ID })
//
// Every transition is a new row; the latest row per model is the current
// state. The store does not deduplicate concurrent double-persists — see
// RecordTransition for the uniqueness recipe if that matters to you.
package postgres
