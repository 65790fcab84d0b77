// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	type ServerConfig struct {
//		Host string `env:"SHELLSERVE_HOST" envDefault:"127.0.0.1"`
//		Port int    `env:"SHELLSERVE_PORT" envDefault:"53472"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Or panic on failure, which is useful at startup:
//
//	config.MustLoad(&cfg)
package config
