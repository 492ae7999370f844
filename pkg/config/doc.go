// Package config loads process configuration from environment variables and
// optional .env files, using github.com/caarlos0/env for struct tags and
// github.com/joho/godotenv for files.
//
// Configuration is treated as write-once: the first Load of a type parses the
// environment and every later Load of the same type returns that copy. Reset
// clears the cache and is intended for tests.
//
//	type RedisConfig struct {
//		URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//	}
//
//	var cfg RedisConfig
//	config.MustLoad(&cfg)
package config
