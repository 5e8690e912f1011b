// Package redis provides a statesman.TransitionLog backed by Redis using
// the go-redis/v9 client.
//
// Each model gets two keys under a configurable prefix: a string key
// holding the latest recorded state and a list holding the full history
// as JSON entries. Both are written in one MULTI/EXEC pipeline so a
// recorded transition is always visible atomically.
//
// Usage:
//
//	var cfg redisstore.Config
//	config.MustLoad(&cfg)
//
//	client, err := redisstore.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer client.Close()
//
//	log, err := redisstore.New[*Order, string](client, func(o *Order) string { return o.ID }, cfg.KeyPrefix)
package redis
