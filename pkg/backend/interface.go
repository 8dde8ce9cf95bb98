package backend

import (
	"context"
	"io"

	"couponscan/internal/models"
)

// Client is the coupon backend as consumed by the apps.
type Client interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) error
	CheckCoupon(ctx context.Context, code string) (*models.CouponCheckResponse, error)
	CreateRedemption(ctx context.Context, record *models.RedemptionRecord) error
	// UploadImage posts the image as multipart field "file" and returns the
	// stored URL from the plain text body.
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
}

// TokenSource supplies the bearer token for authenticated calls. An empty
// token sends no Authorization header.
type TokenSource func(ctx context.Context) string
