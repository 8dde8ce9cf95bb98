package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
	"couponscan/pkg/cache"
)

type fakeCache struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, exp time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	f.ttls[key] = exp
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	if f.getErr != nil {
		return f.getErr
	}
	b, ok := f.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(b, dest)
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) (int64, error) {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return n, nil
}

func (f *fakeCache) Close() error { return nil }

func TestRedisSessionRepository(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCache()
	repo := NewSessionRepository(fc, "userDetails", nil)

	if _, err := repo.Get(ctx); !errors.Is(err, interfaces.ErrSessionNotFound) {
		t.Fatalf("empty Get err = %v", err)
	}

	exp := time.Now().Add(time.Hour).Unix()
	if err := repo.Set(ctx, &models.Session{Token: "t", ExpiresAt: exp, Role: models.RoleAdmin, Status: models.AccountApproved}); err != nil {
		t.Fatal(err)
	}
	if ttl := fc.ttls["userDetails"]; ttl <= 59*time.Minute || ttl > time.Hour {
		t.Fatalf("ttl = %v", ttl)
	}

	got, err := repo.Get(ctx)
	if err != nil || got.Token != "t" || got.Role != models.RoleAdmin {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	if removed, err := repo.Clear(ctx); err != nil || !removed {
		t.Fatalf("Clear = %v, %v", removed, err)
	}
	if removed, err := repo.Clear(ctx); err != nil || removed {
		t.Fatalf("second Clear = %v, %v", removed, err)
	}
}

func TestRedisSessionRepositoryGetError(t *testing.T) {
	fc := newFakeCache()
	fc.getErr = errors.New("connection refused")
	repo := NewSessionRepository(fc, "userDetails", nil)

	_, err := repo.Get(context.Background())
	if err == nil || errors.Is(err, interfaces.ErrSessionNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestRedisSessionRepositoryTTLFollowsClock(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	fc := newFakeCache()
	repo := NewSessionRepository(fc, "userDetails", func() time.Time { return now })

	session := &models.Session{Token: "t", ExpiresAt: now.Add(30 * time.Minute).Unix(), Role: models.RoleAdmin, Status: models.AccountApproved}
	if err := repo.Set(context.Background(), session); err != nil {
		t.Fatal(err)
	}
	if ttl := fc.ttls["userDetails"]; ttl != 30*time.Minute {
		t.Fatalf("ttl = %v, want 30m", ttl)
	}

	session.ExpiresAt = now.Add(-time.Minute).Unix()
	if err := repo.Set(context.Background(), session); err != nil {
		t.Fatal(err)
	}
	if ttl := fc.ttls["userDetails"]; ttl != time.Second {
		t.Fatalf("expired ttl = %v, want 1s", ttl)
	}
}
