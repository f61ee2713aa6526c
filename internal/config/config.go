package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	DatabaseURL       string        `envconfig:"DATABASE_URL" required:"true"`
	AppPort           string        `envconfig:"APP_PORT" default:"8080"`
	JWTSecret         string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL          time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	LowStockThreshold int           `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
