package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
	"couponscan/internal/utils"
	"couponscan/pkg/logger"
)

// Clock returns the current time. Tests substitute a fixed one.
type Clock func() time.Time

type ValidityResult struct {
	Valid   bool
	Session *models.Session
}

type ClearResult struct {
	Removed bool
}

// SessionService guards access to authenticated views. It never verifies the
// token signature; that is the server's job on every authenticated call.
type SessionService interface {
	CheckValidity(ctx context.Context) ValidityResult
	ClearSession(ctx context.Context) ClearResult
	Establish(ctx context.Context, resp *models.LoginResponse) (*models.Session, error)
	RequireRole(ctx context.Context, roles ...models.UserRole) (*models.Session, error)
	// Token returns the stored token, or "" when there is none.
	Token(ctx context.Context) string
}

type sessionService struct {
	repo   interfaces.SessionRepository
	clock  Clock
	logger *logger.Logger
}

func NewSessionService(repo interfaces.SessionRepository, clock Clock, logger *logger.Logger) SessionService {
	if clock == nil {
		clock = time.Now
	}
	return &sessionService{repo: repo, clock: clock, logger: logger}
}

func (s *sessionService) CheckValidity(ctx context.Context) ValidityResult {
	session, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, interfaces.ErrSessionNotFound) {
			s.logger.WithContext(ctx).WithError(err).Warn("Stored session unreadable")
		}
		return ValidityResult{}
	}

	exp, err := utils.ExpiryFromToken(session.Token)
	switch {
	case errors.Is(err, utils.ErrMissingExpiry):
		s.logger.LogSessionEvent(session.Email, "token_without_expiry", nil)
		s.ClearSession(ctx)
		return ValidityResult{}
	case err != nil:
		s.logger.WithContext(ctx).WithError(err).Warn("Stored token could not be decoded")
		return ValidityResult{}
	}

	if !exp.After(s.clock()) {
		s.logger.LogSessionEvent(session.Email, "token_expired", map[string]interface{}{
			"expired_at": exp.Unix(),
		})
		s.ClearSession(ctx)
		return ValidityResult{}
	}

	if !session.Complete() {
		s.logger.LogSessionEvent(session.Email, "session_incomplete", nil)
		s.ClearSession(ctx)
		return ValidityResult{}
	}

	session.ExpiresAt = exp.Unix()
	return ValidityResult{Valid: true, Session: session}
}

func (s *sessionService) ClearSession(ctx context.Context) ClearResult {
	if _, err := s.repo.Clear(ctx); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to clear session")
		return ClearResult{Removed: false}
	}
	return ClearResult{Removed: true}
}

func (s *sessionService) Establish(ctx context.Context, resp *models.LoginResponse) (*models.Session, error) {
	role, ok := models.ParseUserRole(resp.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrRoleNotAllowed, resp.Role)
	}
	status, ok := models.ParseAccountStatus(resp.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrAccountNotApproved, resp.Status)
	}

	exp, err := utils.ExpiryFromToken(resp.Token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	session := &models.Session{
		Token:     resp.Token,
		ExpiresAt: exp.Unix(),
		Role:      role,
		Status:    status,
		Email:     resp.Email,
		UserID:    resp.ID,
		Name:      resp.Name,
	}

	if err := s.repo.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.LogSessionEvent(session.Email, "session_established", map[string]interface{}{
		"role":       string(session.Role),
		"expires_at": session.ExpiresAt,
	})
	return session, nil
}

func (s *sessionService) RequireRole(ctx context.Context, roles ...models.UserRole) (*models.Session, error) {
	result := s.CheckValidity(ctx)
	if !result.Valid {
		return nil, ErrSessionInvalid
	}
	if !result.Session.HasRole(roles...) {
		return nil, ErrRoleNotAllowed
	}
	if result.Session.Role == models.RoleBusinessOwner && result.Session.Status != models.AccountApproved {
		return nil, ErrAccountNotApproved
	}
	return result.Session, nil
}

func (s *sessionService) Token(ctx context.Context) string {
	session, err := s.repo.Get(ctx)
	if err != nil {
		return ""
	}
	return session.Token
}
