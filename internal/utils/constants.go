package utils

import "time"

const (
	AppName    = "couponscan"
	AppVersion = "1.0.0"

	DefaultTimeZone = "UTC"
	DefaultCurrency = "LKR"

	// Key under which the session document is stored on the device.
	SessionStorageKey = "userDetails"

	// Authentication
	JWTAccessTokenTTL = 24 * time.Hour
	PasswordMinLength = 8
	PasswordMaxLength = 128

	// File Upload
	MaxImageSize     = 5 * 1024 * 1024 // 5MB
	MaxImageWidth    = 1280
	MaxImageHeight   = 1280
	ImageJPEGQuality = 80

	// Backend paths
	PathLogin        = "/api/v1/login"
	PathRegister     = "/api/v1/customer/register"
	PathCouponCheck  = "/api/v1/coupon/check/"
	PathRedemption   = "/api/v1/scanned_coupon"
	PathUploadImage  = "/api/v1/upload_image"
	UploadFormField  = "file"
	RedemptionLayout = "2006-01-02 15:04:05"
)

var AllowedImageTypes = []string{"jpg", "jpeg", "png"}
