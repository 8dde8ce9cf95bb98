package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
	"couponscan/pkg/cache"
)

// CacheService is the subset of pkg/cache used here.
type CacheService interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) (int64, error)
	Close() error
}

type sessionRepository struct {
	cache CacheService
	key   string
	now   func() time.Time
}

// NewSessionRepository shares one session between every terminal pointed at
// the same redis key. now should be the clock the session gate uses; nil
// means time.Now.
func NewSessionRepository(c CacheService, key string, now func() time.Time) interfaces.SessionRepository {
	if now == nil {
		now = time.Now
	}
	return &sessionRepository{cache: c, key: key, now: now}
}

func (r *sessionRepository) Get(ctx context.Context) (*models.Session, error) {
	var session models.Session
	err := r.cache.Get(ctx, r.key, &session)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, interfaces.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// Set stores the session until the token expires. Redis drops it on its own
// after that; the gate still checks exp itself.
func (r *sessionRepository) Set(ctx context.Context, session *models.Session) error {
	var ttl time.Duration
	if session.ExpiresAt > 0 {
		ttl = time.Unix(session.ExpiresAt, 0).Sub(r.now())
		if ttl <= 0 {
			ttl = time.Second
		}
	}
	if err := r.cache.Set(ctx, r.key, session, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) (bool, error) {
	n, err := r.cache.Delete(ctx, r.key)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	return n > 0, nil
}

func (r *sessionRepository) Close() error {
	return r.cache.Close()
}
