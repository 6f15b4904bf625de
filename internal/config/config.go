package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server's runtime settings
type Config struct {
	// HTTPAddr is the listen address of the API server
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// RedisAddr is the address of the backing Redis instance
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword authenticates against Redis, empty for none
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB selects the Redis logical database
	RedisDB int `env:"REDIS_DB" envDefault:"0"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
