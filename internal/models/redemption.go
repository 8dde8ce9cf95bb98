package models

import "time"

// RedemptionRecord is posted once per successful use of a coupon.
type RedemptionRecord struct {
	CouponID   int64   `json:"couponId"`
	DateTime   string  `json:"dateTime"`
	Discount   float64 `json:"discount"`
	BillImage  string  `json:"billImage"`
	BusinessID int64   `json:"businessId"`
}

// Redemption is a stored redemption as kept by the development backend.
type Redemption struct {
	ID         int64     `json:"id"`
	CouponID   int64     `json:"couponId"`
	DateTime   string    `json:"dateTime"`
	Discount   float64   `json:"discount"`
	BillImage  string    `json:"billImage"`
	BusinessID int64     `json:"businessId"`
	RecordedBy int64     `json:"recordedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}
