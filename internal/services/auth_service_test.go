package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"couponscan/internal/config"
	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
	"couponscan/internal/validators"
	"couponscan/pkg/backend"
	"couponscan/pkg/logger"
)

func newAuth(t *testing.T, fb *fakeBackend, variant config.AppVariant) (AuthService, interfaces.SessionRepository) {
	t.Helper()
	sessions, repo := newSessions(t)
	return NewAuthService(fb, sessions, variant, logger.NewNop()), repo
}

func TestLoginIdentifierRouting(t *testing.T) {
	token := tokenExpiringAt(t, fixedNow.Add(time.Hour))
	fb := &fakeBackend{loginResp: &models.LoginResponse{Role: "BUSINESS_OWNER", Status: "APPROVED", Token: token}}
	auth, _ := newAuth(t, fb, config.VariantBusiness)

	if _, err := auth.Login(context.Background(), " Owner@Example.com ", "pw"); err != nil {
		t.Fatal(err)
	}
	if fb.loginReq.Email != "owner@example.com" || fb.loginReq.UserName != "" {
		t.Fatalf("email login sent %+v", fb.loginReq)
	}

	if _, err := auth.Login(context.Background(), "owner", "pw"); err != nil {
		t.Fatal(err)
	}
	if fb.loginReq.UserName != "owner" || fb.loginReq.Email != "" {
		t.Fatalf("username login sent %+v", fb.loginReq)
	}
}

func TestLoginMissingFields(t *testing.T) {
	fb := &fakeBackend{}
	auth, _ := newAuth(t, fb, config.VariantCustomer)

	_, err := auth.Login(context.Background(), "", "pw")
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("err = %v", err)
	}
	if UserMessage(err) != "Please fill in both username and password." {
		t.Fatalf("message = %q", UserMessage(err))
	}
	if fb.loginReq != nil {
		t.Fatal("no request should be sent")
	}
}

func TestLoginStatusMapping(t *testing.T) {
	tests := []struct {
		err     error
		want    error
		message string
	}{
		{&backend.StatusError{Code: http.StatusUnauthorized}, ErrBadCredentials, "Invalid username or password."},
		{&backend.StatusError{Code: http.StatusNotFound, Message: "User not found"}, ErrUserNotFound, "User not found"},
		{&backend.StatusError{Code: http.StatusInternalServerError, Message: "db down"}, ErrLoginFailed, "db down"},
		{&backend.StatusError{Code: http.StatusBadGateway}, ErrLoginFailed, "Something went wrong."},
		{backend.ErrTransport, ErrLoginFailed, "Failed to login. Please try again."},
	}

	for _, tt := range tests {
		auth, repo := newAuth(t, &fakeBackend{loginErr: tt.err}, config.VariantBusiness)
		_, err := auth.Login(context.Background(), "owner", "pw")
		if !errors.Is(err, tt.want) {
			t.Fatalf("%v: err = %v, want %v", tt.err, err, tt.want)
		}
		if got := UserMessage(err); got != tt.message {
			t.Fatalf("%v: message = %q, want %q", tt.err, got, tt.message)
		}
		if _, err := repo.Get(context.Background()); !errors.Is(err, interfaces.ErrSessionNotFound) {
			t.Fatal("session stored after failed login")
		}
	}
}

func TestLoginRoleGate(t *testing.T) {
	token := tokenExpiringAt(t, fixedNow.Add(time.Hour))
	tests := []struct {
		variant config.AppVariant
		role    string
		status  string
		want    error
	}{
		{config.VariantCustomer, "CUSTOMER", "APPROVED", nil},
		{config.VariantCustomer, "BUSINESS_OWNER", "APPROVED", ErrRoleNotAllowed},
		{config.VariantBusiness, "CUSTOMER", "APPROVED", ErrRoleNotAllowed},
		{config.VariantBusiness, "BUSINESS_OWNER", "PENDING", ErrAccountNotApproved},
		{config.VariantBusiness, "BUSINESS_OWNER", "APPROVED", nil},
		{config.VariantBusiness, "ADMIN", "APPROVED", nil},
	}

	for _, tt := range tests {
		fb := &fakeBackend{loginResp: &models.LoginResponse{Role: tt.role, Status: tt.status, Token: token}}
		auth, repo := newAuth(t, fb, tt.variant)

		_, err := auth.Login(context.Background(), "someone", "pw")
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s/%s on %s: err = %v, want %v", tt.role, tt.status, tt.variant, err, tt.want)
		}
		_, getErr := repo.Get(context.Background())
		if stored := getErr == nil; stored != (tt.want == nil) {
			t.Fatalf("%s/%s on %s: stored = %v", tt.role, tt.status, tt.variant, stored)
		}
	}
}

func validRegister() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name: "Kamal", Email: "kamal@example.com", PhoneNo: "0771234567", Password: "Secret#123",
	}
}

func TestRegisterDefaultsRolePerVariant(t *testing.T) {
	fb := &fakeBackend{}
	auth, _ := newAuth(t, fb, config.VariantBusiness)
	if err := auth.Register(context.Background(), validRegister()); err != nil {
		t.Fatal(err)
	}
	if fb.registered.Role != models.RoleBusinessOwner || fb.registered.Status != models.AccountPending {
		t.Fatalf("sent %+v", fb.registered)
	}

	fb = &fakeBackend{}
	auth, _ = newAuth(t, fb, config.VariantCustomer)
	if err := auth.Register(context.Background(), validRegister()); err != nil {
		t.Fatal(err)
	}
	if fb.registered.Role != models.RoleCustomer || fb.registered.Status != models.AccountApproved {
		t.Fatalf("sent %+v", fb.registered)
	}
}

func TestRegisterErrors(t *testing.T) {
	auth, _ := newAuth(t, &fakeBackend{registerEr: &backend.StatusError{Code: http.StatusConflict}}, config.VariantCustomer)
	if err := auth.Register(context.Background(), validRegister()); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("409 err = %v", err)
	}

	fb := &fakeBackend{}
	auth, _ = newAuth(t, fb, config.VariantCustomer)
	bad := validRegister()
	bad.Email = "nope"
	err := auth.Register(context.Background(), bad)
	var verrs validators.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("validation err = %v", err)
	}
	if fb.registered != nil {
		t.Fatal("invalid request was sent")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	token := tokenExpiringAt(t, fixedNow.Add(time.Hour))
	fb := &fakeBackend{loginResp: &models.LoginResponse{Role: "CUSTOMER", Status: "APPROVED", Token: token}}
	auth, repo := newAuth(t, fb, config.VariantCustomer)

	if _, err := auth.Login(context.Background(), "c", "pw"); err != nil {
		t.Fatal(err)
	}
	if res := auth.Logout(context.Background()); !res.Removed {
		t.Fatal("logout did not report removal")
	}
	if _, err := repo.Get(context.Background()); !errors.Is(err, interfaces.ErrSessionNotFound) {
		t.Fatal("session survived logout")
	}
}

func TestLogoutReportsStorageFailure(t *testing.T) {
	sessions := NewSessionService(failingRepo{}, fixedClock, logger.NewNop())
	auth := NewAuthService(&fakeBackend{}, sessions, config.VariantBusiness, logger.NewNop())

	if res := auth.Logout(context.Background()); res.Removed {
		t.Fatal("logout reported removal on storage error")
	}
}
