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

	// JWTSecret is the process-wide symmetric signing secret. Rotating it
	// invalidates every token issued before the restart.
	JWTSecret            string `env:"JWT_SECRET"`
	TokenTTLMinutes      int    `env:"TOKEN_TTL_MINUTES,       default=15"`
	LoginTokenTTLMinutes int    `env:"LOGIN_TOKEN_TTL_MINUTES, default=30"`
	BcryptCost           int    `env:"BCRYPT_COST,             default=10"`
	AuditWorkers         int    `env:"AUDIT_WORKERS,           default=4"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Throttle ThrottleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=todo_app"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ThrottleConfig bounds failed logins: after MaxFailures failures within
// WindowMinutes, further attempts for that username are rejected until the
// window expires.
type ThrottleConfig struct {
	MaxFailures   int `env:"LOGIN_MAX_FAILURES,           default=5"`
	WindowMinutes int `env:"LOGIN_THROTTLE_WINDOW_MINUTES, default=15"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
