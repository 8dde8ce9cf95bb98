package services

import (
	"context"

	"couponscan/internal/models"
	"couponscan/pkg/backend"
	"couponscan/pkg/logger"
)

type CouponService interface {
	// Lookup never fails. Any problem reaching or understanding the backend
	// is reported as CouponStatusError.
	Lookup(ctx context.Context, code string) models.Coupon
}

type couponService struct {
	client backend.Client
	logger *logger.Logger
}

func NewCouponService(client backend.Client, logger *logger.Logger) CouponService {
	return &couponService{client: client, logger: logger}
}

func (s *couponService) Lookup(ctx context.Context, code string) models.Coupon {
	resp, err := s.client.CheckCoupon(ctx, code)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithField("code", code).Warn("Coupon lookup failed")
		return models.Coupon{Code: code, Status: models.CouponStatusError}
	}

	coupon := models.Coupon{
		ID:              resp.CouponID,
		Code:            code,
		Status:          models.ParseCouponStatus(resp.Status),
		DiscountPercent: resp.Discount,
	}

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"code":      code,
		"coupon_id": coupon.ID,
		"status":    string(coupon.Status),
	}).Debug("Coupon looked up")

	return coupon
}
