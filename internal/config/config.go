package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is populated from the environment (after godotenv has loaded .env).
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	NominatimURL         string        `envconfig:"NOMINATIM_URL" default:"https://nominatim.openstreetmap.org"`
	NominatimUserAgent   string        `envconfig:"NOMINATIM_USER_AGENT" default:"navigation-service/1.0"`
	GeocodeTimeout       time.Duration `envconfig:"GEOCODE_TIMEOUT" default:"10s"`
	GeocodeRatePerSecond float64       `envconfig:"GEOCODE_RATE_PER_SECOND" default:"1"`
	GeocodeBurst         int           `envconfig:"GEOCODE_BURST" default:"1"`

	SeedPath string `envconfig:"SEED_PATH" default:"data/seeds/places.json"`
}

// Load reads Config from the environment and checks value ranges.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.GeocodeTimeout <= 0 || cfg.GeocodeTimeout > time.Minute {
		return nil, fmt.Errorf("load config: GEOCODE_TIMEOUT must be in (0, 1m], got %s", cfg.GeocodeTimeout)
	}
	if cfg.GeocodeRatePerSecond < 0 {
		return nil, fmt.Errorf("load config: GEOCODE_RATE_PER_SECOND must not be negative")
	}

	return &cfg, nil
}
