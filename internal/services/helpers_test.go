package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
	"couponscan/internal/repositories/kvstore"
	"couponscan/internal/utils"
	"couponscan/pkg/logger"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fakeBackend struct {
	loginReq   *models.LoginRequest
	loginResp  *models.LoginResponse
	loginErr   error
	registered *models.RegisterRequest
	registerEr error

	couponResp *models.CouponCheckResponse
	couponErr  error

	records     []*models.RedemptionRecord
	redeemErr   error
	uploadName  string
	uploadBytes []byte
	uploadURL   string
	uploadErr   error
}

func (f *fakeBackend) Login(_ context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	f.loginReq = req
	return f.loginResp, f.loginErr
}

func (f *fakeBackend) Register(_ context.Context, req *models.RegisterRequest) error {
	f.registered = req
	return f.registerEr
}

func (f *fakeBackend) CheckCoupon(_ context.Context, code string) (*models.CouponCheckResponse, error) {
	return f.couponResp, f.couponErr
}

func (f *fakeBackend) CreateRedemption(_ context.Context, record *models.RedemptionRecord) error {
	f.records = append(f.records, record)
	return f.redeemErr
}

func (f *fakeBackend) UploadImage(_ context.Context, name string, r io.Reader) (string, error) {
	f.uploadName = name
	f.uploadBytes, _ = io.ReadAll(r)
	return f.uploadURL, f.uploadErr
}

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()
	token, _, err := utils.GenerateToken("7", "BUSINESS_OWNER", "owner@example.com", "secret", exp.Add(-time.Hour), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func newSessions(t *testing.T) (SessionService, interfaces.SessionRepository) {
	t.Helper()
	repo := kvstore.NewMemorySessionRepository("userDetails")
	t.Cleanup(func() { repo.Close() })
	return NewSessionService(repo, fixedClock, logger.NewNop()), repo
}

func storeSession(t *testing.T, repo interfaces.SessionRepository, s *models.Session) {
	t.Helper()
	if err := repo.Set(context.Background(), s); err != nil {
		t.Fatal(err)
	}
}

var errDisk = errors.New("disk")

// failingRepo fails every storage call.
type failingRepo struct{}

func (failingRepo) Get(context.Context) (*models.Session, error) { return nil, errDisk }

func (failingRepo) Set(context.Context, *models.Session) error { return errDisk }

func (failingRepo) Clear(context.Context) (bool, error) { return false, errDisk }

func (failingRepo) Close() error { return nil }
