package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"couponscan/pkg/logger"
)

type Config struct {
	App       *AppConfig
	API       *APIConfig
	Session   *SessionConfig
	Redis     *RedisConfig
	Upload    *UploadConfig
	Storage   *StorageConfig
	DevServer *DevServerConfig
	Log       *logger.Config
}

// AppVariant selects which iteration of the product the client acts as.
type AppVariant string

const (
	VariantCustomer AppVariant = "customer"
	VariantBusiness AppVariant = "business"
)

type AppConfig struct {
	Name        string     `env:"NAME" envDefault:"couponscan"`
	Version     string     `env:"VERSION" envDefault:"1.0.0"`
	Environment string     `env:"ENV" envDefault:"development"`
	Variant     AppVariant `env:"VARIANT" envDefault:"business"`
	Timezone    string     `env:"TIMEZONE" envDefault:"UTC"`
	Currency    string     `env:"CURRENCY" envDefault:"LKR"`
}

type APIConfig struct {
	BaseURL   string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"15s"`
	UserAgent string        `env:"USER_AGENT" envDefault:"couponscan-client"`
}

// Load reads every section from the process environment.
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads every section from environ, or from the process
// environment when environ is nil.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{
		App:       &AppConfig{},
		API:       &APIConfig{},
		Session:   &SessionConfig{},
		Redis:     &RedisConfig{},
		Upload:    &UploadConfig{},
		Storage:   &StorageConfig{},
		DevServer: &DevServerConfig{},
		Log:       &logger.Config{},
	}

	sections := []struct {
		prefix string
		target any
	}{
		{"APP_", cfg.App},
		{"API_", cfg.API},
		{"SESSION_", cfg.Session},
		{"REDIS_", cfg.Redis},
		{"UPLOAD_", cfg.Upload},
		{"STORAGE_", cfg.Storage},
		{"DEVSERVER_", cfg.DevServer},
		{"LOG_", cfg.Log},
	}
	for _, s := range sections {
		if err := parseSection(s.target, s.prefix, environ); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.Log.AppName = cfg.App.Name
	cfg.Log.Version = cfg.App.Version

	return cfg, nil
}

func parseSection(target any, prefix string, environ map[string]string) error {
	opts := env.Options{Prefix: prefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env %s*: %w", prefix, err)
	}
	return nil
}

func (c *Config) validate() error {
	switch c.App.Variant {
	case VariantCustomer, VariantBusiness:
	default:
		return fmt.Errorf("APP_VARIANT: unknown variant %q", c.App.Variant)
	}
	switch c.Session.Store {
	case SessionStoreFile, SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("SESSION_STORE: unknown store %q", c.Session.Store)
	}
	switch c.Storage.Provider {
	case StorageLocal, StorageS3, StorageGCS:
	default:
		return fmt.Errorf("STORAGE_PROVIDER: unknown provider %q", c.Storage.Provider)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	if c.Upload.JPEGQuality < 1 || c.Upload.JPEGQuality > 100 {
		return fmt.Errorf("UPLOAD_JPEG_QUALITY must be within 1..100")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsTest() bool {
	return c.App.Environment == "test"
}
