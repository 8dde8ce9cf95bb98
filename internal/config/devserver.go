package config

import "time"

type DevServerConfig struct {
	Host      string        `env:"HOST" envDefault:"0.0.0.0"`
	Port      int           `env:"PORT" envDefault:"8080"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-only-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	// SeedFile is an optional JSON file with users and coupons to preload.
	SeedFile string `env:"SEED_FILE"`
}
