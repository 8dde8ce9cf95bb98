package services

import (
	"errors"

	"couponscan/internal/validators"
	"couponscan/pkg/backend"
)

// Authorization
var (
	ErrSessionInvalid     = errors.New("session is missing or expired")
	ErrRoleNotAllowed     = errors.New("role not allowed for this app")
	ErrAccountNotApproved = errors.New("account is not approved")
	ErrBadCredentials     = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Validation
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidAmount      = validators.ErrInvalidAmount
	ErrAmountRequired     = errors.New("amount is required")
	ErrNotImage           = errors.New("file is not a supported image")
	ErrImageTooLarge      = errors.New("image is too large")
)

// Domain state
var (
	ErrCouponNotRedeemable = errors.New("coupon cannot be redeemed")
	ErrInvalidTransition   = errors.New("action not allowed in current state")
	ErrDuplicateUser       = errors.New("user already exists")
	ErrLoginFailed         = errors.New("login failed")
	ErrRegisterFailed      = errors.New("registration failed")
	ErrRedemptionFailed    = errors.New("redemption failed")
	ErrUploadFailed        = errors.New("image upload failed")
)

// RequestError is a rejected backend call. Message is the server's own
// explanation and is shown to the user verbatim when present.
type RequestError struct {
	Op      error
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Op.Error() + ": " + e.Message
	}
	return e.Op.Error() + ": " + e.Err.Error()
}

func (e *RequestError) Unwrap() []error {
	return []error{e.Op, e.Err}
}

// UserMessage maps err to the short text shown in an alert.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs.First()
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Message != "" {
			return reqErr.Message
		}
		// the server answered but gave no reason
		if errors.Is(reqErr.Op, ErrLoginFailed) {
			return "Something went wrong."
		}
	}

	switch {
	case errors.Is(err, ErrMissingCredentials):
		return "Please fill in both username and password."
	case errors.Is(err, ErrRoleNotAllowed):
		return "You are not authorized to access this page."
	case errors.Is(err, ErrAccountNotApproved):
		return "Your account is waiting for approval."
	case errors.Is(err, ErrSessionInvalid):
		return "Your session has expired. Please log in again."
	case errors.Is(err, ErrBadCredentials):
		return "Invalid username or password."
	case errors.Is(err, ErrUserNotFound):
		return "No account found for this username."
	case errors.Is(err, ErrDuplicateUser):
		return "An account with this email already exists."
	case errors.Is(err, ErrInvalidAmount):
		return "Please enter a valid amount"
	case errors.Is(err, ErrAmountRequired):
		return "Please enter the bill amount."
	case errors.Is(err, ErrCouponNotRedeemable):
		return "This coupon cannot be used."
	case errors.Is(err, ErrNotImage):
		return "Please choose a JPG or PNG image."
	case errors.Is(err, ErrImageTooLarge):
		return "The image is too large."
	case errors.Is(err, ErrLoginFailed):
		return "Failed to login. Please try again."
	case errors.Is(err, backend.ErrTransport):
		return "Could not reach the server. Please try again."
	default:
		return "Something went wrong."
	}
}
