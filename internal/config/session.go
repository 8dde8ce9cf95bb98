package config

type SessionStore string

const (
	SessionStoreFile   SessionStore = "file"
	SessionStoreMemory SessionStore = "memory"
	SessionStoreRedis  SessionStore = "redis"
)

type SessionConfig struct {
	Store SessionStore `env:"STORE" envDefault:"file"`
	// Directory holds the file store; empty means <user config dir>/couponscan.
	Directory string `env:"DIR"`
	Key       string `env:"KEY" envDefault:"userDetails"`
}
