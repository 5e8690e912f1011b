// Package config loads environment-based configuration into tagged
// structs. It is a thin wrapper around github.com/caarlos0/env that also
// sources a local .env file via godotenv, used by the store packages to
// populate their Config types.
//
// Usage:
//
//	var cfg redisstore.Config
//	config.MustLoad(&cfg)
package config
