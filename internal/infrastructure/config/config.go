package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret must come from the environment or a secret store. There is no
	// default on purpose: the service refuses to start without it.
	JWTSecret    string `env:"JWT_SECRET, required"`
	JWTAlgorithm string `env:"JWT_ALGORITHM, default=HS256"`

	BcryptCost int `env:"BCRYPT_COST, default=10"`

	Database DatabaseConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	URI string `env:"DATABASE_URI, default=postgres://localhost:5432/pizza_db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,  default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
