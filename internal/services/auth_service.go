package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"couponscan/internal/config"
	"couponscan/internal/models"
	"couponscan/internal/validators"
	"couponscan/pkg/backend"
	"couponscan/pkg/logger"
)

type AuthService interface {
	// Login authenticates against the backend and, when the account may use
	// this app, stores the session. Nothing is stored on any failure.
	Login(ctx context.Context, identifier, password string) (*models.Session, error)
	Register(ctx context.Context, request *models.RegisterRequest) error
	Logout(ctx context.Context) ClearResult
}

type authService struct {
	client   backend.Client
	sessions SessionService
	variant  config.AppVariant
	logger   *logger.Logger
}

func NewAuthService(client backend.Client, sessions SessionService, variant config.AppVariant, logger *logger.Logger) AuthService {
	return &authService{
		client:   client,
		sessions: sessions,
		variant:  variant,
		logger:   logger,
	}
}

// AllowedRoles lists the roles that may sign in to an app variant.
func AllowedRoles(variant config.AppVariant) []models.UserRole {
	if variant == config.VariantCustomer {
		return []models.UserRole{models.RoleCustomer}
	}
	return []models.UserRole{models.RoleBusinessOwner, models.RoleAdmin}
}

func (s *authService) Login(ctx context.Context, identifier, password string) (*models.Session, error) {
	// Validate request
	if errs := validators.ValidateLogin(identifier, password); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrMissingCredentials, errs)
	}

	identifier = strings.TrimSpace(identifier)
	request := &models.LoginRequest{Password: password}
	if strings.Contains(identifier, "@") {
		request.Email = strings.ToLower(identifier)
	} else {
		request.UserName = identifier
	}

	resp, err := s.client.Login(ctx, request)
	if err != nil {
		s.logger.LogSecurityEvent("login_failed", "low", map[string]interface{}{
			"identifier":  identifier,
			"status_code": backend.StatusCode(err),
		})
		return nil, mapLoginError(err)
	}

	role, _ := models.ParseUserRole(resp.Role)
	if !(&models.Session{Role: role}).HasRole(AllowedRoles(s.variant)...) {
		s.logger.LogSecurityEvent("role_rejected", "medium", map[string]interface{}{
			"identifier": identifier,
			"role":       resp.Role,
			"app":        string(s.variant),
		})
		return nil, ErrRoleNotAllowed
	}

	if status, _ := models.ParseAccountStatus(resp.Status); role == models.RoleBusinessOwner && status != models.AccountApproved {
		return nil, ErrAccountNotApproved
	}

	session, err := s.sessions.Establish(ctx, resp)
	if err != nil {
		s.logger.WithError(err).Error("Failed to establish session")
		return nil, err
	}

	return session, nil
}

func mapLoginError(err error) error {
	var se *backend.StatusError
	if !errors.As(err, &se) {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	switch se.Code {
	case http.StatusUnauthorized:
		return &RequestError{Op: ErrBadCredentials, Message: se.Message, Err: err}
	case http.StatusNotFound:
		return &RequestError{Op: ErrUserNotFound, Message: se.Message, Err: err}
	default:
		return &RequestError{Op: ErrLoginFailed, Message: se.Message, Err: err}
	}
}

func (s *authService) Register(ctx context.Context, request *models.RegisterRequest) error {
	if request.Role == "" {
		if s.variant == config.VariantCustomer {
			request.Role, request.Status = models.RoleCustomer, models.AccountApproved
		} else {
			request.Role, request.Status = models.RoleBusinessOwner, models.AccountPending
		}
	}

	if errs := validators.ValidateRegistration(request); len(errs) > 0 {
		return errs
	}

	if err := s.client.Register(ctx, request); err != nil {
		var se *backend.StatusError
		if !errors.As(err, &se) {
			return fmt.Errorf("%w: %w", ErrRegisterFailed, err)
		}
		if se.Code == http.StatusConflict {
			return &RequestError{Op: ErrDuplicateUser, Message: se.Message, Err: err}
		}
		return &RequestError{Op: ErrRegisterFailed, Message: se.Message, Err: err}
	}

	s.logger.LogSessionEvent(request.Email, "registered", map[string]interface{}{
		"role": string(request.Role),
	})
	return nil
}

func (s *authService) Logout(ctx context.Context) ClearResult {
	result := s.sessions.ClearSession(ctx)
	s.logger.WithField("removed", result.Removed).Info("Logged out")
	return result
}
