package handlers

import (
	"errors"
	"net/http"
	"strings"

	"couponscan/internal/middleware"
	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
	"couponscan/internal/utils"
	"couponscan/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	coupons     interfaces.CouponRepository
	redemptions interfaces.RedemptionRepository
	logger      *logger.Logger
}

func NewCouponHandler(coupons interfaces.CouponRepository, redemptions interfaces.RedemptionRepository, logger *logger.Logger) *CouponHandler {
	return &CouponHandler{
		coupons:     coupons,
		redemptions: redemptions,
		logger:      logger,
	}
}

// CheckCoupon reports the status of a scanned code. Statuses go out in lower
// case; clients normalize them.
func (h *CouponHandler) CheckCoupon(c *gin.Context) {
	coupon, err := h.coupons.GetByCode(c.Request.Context(), c.Param("code"))
	if errors.Is(err, interfaces.ErrCouponNotFound) {
		utils.NotFoundResponse(c, "Coupon not found")
		return
	}
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, models.CouponCheckResponse{
		Status:   strings.ToLower(string(coupon.Status)),
		Discount: coupon.DiscountPercent,
		CouponID: coupon.ID,
	})
}

// RecordRedemption stores a redemption and marks the coupon used
func (h *CouponHandler) RecordRedemption(c *gin.Context) {
	var record models.RedemptionRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.BadRequestResponse(c, "Invalid request")
		return
	}
	if record.Discount < 0 {
		utils.BadRequestResponse(c, "Discount must not be negative")
		return
	}

	ctx := c.Request.Context()
	err := h.coupons.MarkUsed(ctx, record.CouponID)
	switch {
	case errors.Is(err, interfaces.ErrCouponNotFound):
		utils.NotFoundResponse(c, "Coupon not found")
		return
	case errors.Is(err, interfaces.ErrCouponNotRedeemable):
		utils.ErrorResponse(c, http.StatusConflict, "Coupon is not redeemable")
		return
	case err != nil:
		h.logger.WithContext(ctx).WithError(err).Error("Failed to mark coupon used")
		utils.InternalServerErrorResponse(c)
		return
	}

	redemption := &models.Redemption{
		CouponID:   record.CouponID,
		DateTime:   record.DateTime,
		Discount:   record.Discount,
		BillImage:  record.BillImage,
		BusinessID: record.BusinessID,
		RecordedBy: c.GetInt64(middleware.ContextUserID),
	}
	if err := h.redemptions.Create(ctx, redemption); err != nil {
		h.logger.WithContext(ctx).WithError(err).Error("Failed to store redemption")
		// put the coupon back so the operator can submit again
		if err := h.coupons.UpdateStatus(ctx, record.CouponID, models.CouponStatusIssued); err != nil {
			h.logger.WithContext(ctx).WithError(err).Error("Failed to reissue coupon")
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	h.logger.WithContext(ctx).LogRedemptionEvent(record.CouponID, "recorded", 0, record.Discount)
	c.JSON(http.StatusCreated, redemption)
}
