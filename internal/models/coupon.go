package models

import (
	"fmt"
	"strconv"
	"strings"
)

// CouponStatus is the lifecycle status of a coupon as seen by the client.
// StatusError is not a server status; it stands for any lookup that did not
// produce a usable answer.
type CouponStatus string

const (
	CouponStatusPending CouponStatus = "PENDING"
	CouponStatusIssued  CouponStatus = "ISSUED"
	CouponStatusUsed    CouponStatus = "USED"
	CouponStatusDeleted CouponStatus = "DELETED"
	CouponStatusError   CouponStatus = "ERROR"
)

// ParseCouponStatus maps a server status string, in any case, to a
// CouponStatus. Unknown strings become CouponStatusError.
func ParseCouponStatus(s string) CouponStatus {
	switch st := CouponStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case CouponStatusPending, CouponStatusIssued, CouponStatusUsed, CouponStatusDeleted:
		return st
	default:
		return CouponStatusError
	}
}

// Redeemable reports whether a coupon in this status may be used.
func (s CouponStatus) Redeemable() bool {
	return s == CouponStatusIssued
}

// Terminal reports whether a lookup ends the interaction without amount entry.
func (s CouponStatus) Terminal() bool {
	return !s.Redeemable()
}

type Coupon struct {
	ID              int64        `json:"coupon_id"`
	Code            string       `json:"code"`
	Status          CouponStatus `json:"status"`
	DiscountPercent float64      `json:"discount"`
}

// Message is the short text shown to the operator after a lookup.
func (c Coupon) Message() string {
	switch c.Status {
	case CouponStatusIssued:
		return fmt.Sprintf("This coupon can be used with %s%% discount.", strconv.FormatFloat(c.DiscountPercent, 'f', -1, 64))
	case CouponStatusUsed:
		return "This coupon is already used."
	case CouponStatusPending, CouponStatusDeleted:
		return "This coupon is invalid."
	case CouponStatusError:
		return "Something went wrong."
	default:
		return "This coupon is invalid."
	}
}

// CouponCheckResponse is the body of GET /api/v1/coupon/check/{code}.
type CouponCheckResponse struct {
	Status   string  `json:"status"`
	Discount float64 `json:"discount"`
	CouponID int64   `json:"coupon_id"`
}
