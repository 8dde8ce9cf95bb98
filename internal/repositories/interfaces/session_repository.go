package interfaces

import (
	"context"
	"errors"

	"couponscan/internal/models"
)

// ErrSessionNotFound is returned by Get when no session document is stored.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository holds the single locally persisted session document.
type SessionRepository interface {
	Get(ctx context.Context) (*models.Session, error)
	// Set replaces the whole document.
	Set(ctx context.Context, session *models.Session) error
	// Clear is idempotent. removed reports whether a document existed.
	Clear(ctx context.Context) (removed bool, err error)
	Close() error
}
