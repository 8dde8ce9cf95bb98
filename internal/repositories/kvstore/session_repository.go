package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"

	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/encoding"
	"github.com/philippgille/gokv/file"
	"github.com/philippgille/gokv/syncmap"
)

type sessionRepository struct {
	store gokv.Store
	key   string
}

// NewSessionRepository stores the session document under key in any gokv store.
func NewSessionRepository(store gokv.Store, key string) interfaces.SessionRepository {
	return &sessionRepository{store: store, key: key}
}

// NewFileSessionRepository keeps the session as <dir>/<key>.json.
func NewFileSessionRepository(dir, key string) (interfaces.SessionRepository, error) {
	ext := "json"
	store, err := file.NewStore(file.Options{Directory: dir, FilenameExtension: &ext, Codec: encoding.JSON})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return NewSessionRepository(store, key), nil
}

func NewMemorySessionRepository(key string) interfaces.SessionRepository {
	return NewSessionRepository(syncmap.NewStore(syncmap.Options{Codec: encoding.JSON}), key)
}

func (r *sessionRepository) Get(ctx context.Context) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var session models.Session
	found, err := r.store.Get(r.key, &session)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if !found {
		return nil, interfaces.ErrSessionNotFound
	}

	return &session, nil
}

func (r *sessionRepository) Set(ctx context.Context, session *models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.store.Set(r.key, session); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// A raw read tells presence apart from a corrupt document, which is
	// removed all the same.
	var raw json.RawMessage
	found, err := r.store.Get(r.key, &raw)
	if err != nil {
		found = true
	}

	if err := r.store.Delete(r.key); err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	return found, nil
}

func (r *sessionRepository) Close() error {
	return r.store.Close()
}
