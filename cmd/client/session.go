package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"couponscan/internal/config"
	"couponscan/internal/repositories/interfaces"
	"couponscan/internal/repositories/kvstore"
	"couponscan/internal/repositories/rediscache"
	"couponscan/pkg/cache"
)

// openSessionRepository picks the session store named by SESSION_STORE.
func openSessionRepository(cfg *config.Config) (interfaces.SessionRepository, error) {
	switch cfg.Session.Store {
	case config.SessionStoreMemory:
		return kvstore.NewMemorySessionRepository(cfg.Session.Key), nil
	case config.SessionStoreRedis:
		rc, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			KeyPrefix:    cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return rediscache.NewSessionRepository(rc, cfg.Session.Key, time.Now), nil
	default:
		dir := cfg.Session.Directory
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("no session directory: %w", err)
			}
			dir = filepath.Join(base, cfg.App.Name)
		}
		return kvstore.NewFileSessionRepository(dir, cfg.Session.Key)
	}
}
