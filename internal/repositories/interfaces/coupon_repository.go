package interfaces

import (
	"context"
	"errors"

	"couponscan/internal/models"
)

var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponNotRedeemable = errors.New("coupon is not redeemable")
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	GetByID(ctx context.Context, id int64) (*models.Coupon, error)
	UpdateStatus(ctx context.Context, id int64, status models.CouponStatus) error
	// MarkUsed moves an issued coupon to used in one step. Any other status
	// returns ErrCouponNotRedeemable.
	MarkUsed(ctx context.Context, id int64) error
}

type RedemptionRepository interface {
	Create(ctx context.Context, record *models.Redemption) error
	ListByBusiness(ctx context.Context, businessID int64) ([]*models.Redemption, error)
}
