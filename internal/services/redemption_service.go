package services

import (
	"context"
	"errors"
	"fmt"

	"couponscan/internal/models"
	"couponscan/internal/utils"
	"couponscan/internal/validators"
	"couponscan/pkg/backend"
	"couponscan/pkg/logger"

	"github.com/google/uuid"
)

type FlowState int

const (
	FlowIdle FlowState = iota
	FlowScanned
	FlowStatusKnown
	FlowAmountEntry
	FlowSubmitted
)

func (s FlowState) String() string {
	switch s {
	case FlowIdle:
		return "idle"
	case FlowScanned:
		return "scanned"
	case FlowStatusKnown:
		return "status_known"
	case FlowAmountEntry:
		return "amount_entry"
	case FlowSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("FlowState(%d)", int(s))
	}
}

// RedemptionService starts one flow per scan interaction.
type RedemptionService interface {
	NewFlow() *RedemptionFlow
}

type redemptionService struct {
	coupons  CouponService
	client   backend.Client
	sessions SessionService
	clock    Clock
	timezone string
	logger   *logger.Logger
}

func NewRedemptionService(
	coupons CouponService,
	client backend.Client,
	sessions SessionService,
	clock Clock,
	timezone string,
	logger *logger.Logger,
) RedemptionService {
	return &redemptionService{
		coupons:  coupons,
		client:   client,
		sessions: sessions,
		clock:    clock,
		timezone: timezone,
		logger:   logger,
	}
}

func (s *redemptionService) NewFlow() *RedemptionFlow {
	id := uuid.NewString()
	return &RedemptionFlow{
		svc:    s,
		id:     id,
		logger: s.logger.WithField("interaction_id", id),
	}
}

// RedemptionFlow walks one scanned code from lookup to a submitted
// redemption. It is not safe for concurrent use.
type RedemptionFlow struct {
	svc    *redemptionService
	id     string
	logger *logger.Logger

	state     FlowState
	coupon    models.Coupon
	amount    float64
	hasAmount bool
	billImage string
}

func (f *RedemptionFlow) ID() string { return f.id }

func (f *RedemptionFlow) State() FlowState { return f.state }

func (f *RedemptionFlow) Coupon() models.Coupon { return f.coupon }

// Amount returns the entered bill amount, if any.
func (f *RedemptionFlow) Amount() (float64, bool) { return f.amount, f.hasAmount }

func (f *RedemptionFlow) BillImage() string { return f.billImage }

func (f *RedemptionFlow) ctx(ctx context.Context) context.Context {
	return context.WithValue(ctx, logger.InteractionIDKey, f.id)
}

func (f *RedemptionFlow) Scan(ctx context.Context, code string) (models.Coupon, error) {
	if f.state != FlowIdle {
		return models.Coupon{}, fmt.Errorf("%w: scan from %s", ErrInvalidTransition, f.state)
	}

	f.state = FlowScanned
	f.logger.WithField("code", code).Info("Coupon scanned")

	f.coupon = f.svc.coupons.Lookup(f.ctx(ctx), code)
	f.state = FlowStatusKnown
	return f.coupon, nil
}

func (f *RedemptionFlow) BeginAmountEntry() error {
	if f.state != FlowStatusKnown {
		return fmt.Errorf("%w: amount entry from %s", ErrInvalidTransition, f.state)
	}
	if !f.coupon.Status.Redeemable() {
		return fmt.Errorf("%w: status %s", ErrCouponNotRedeemable, f.coupon.Status)
	}
	f.state = FlowAmountEntry
	return nil
}

// EnterAmount takes the raw text of the amount field. Empty text clears the
// amount. Rejected text leaves the previous amount in place.
func (f *RedemptionFlow) EnterAmount(text string) error {
	if f.state != FlowAmountEntry {
		return fmt.Errorf("%w: amount from %s", ErrInvalidTransition, f.state)
	}

	amount, ok, err := validators.ParseAmount(text)
	if err != nil {
		return err
	}

	f.amount, f.hasAmount = amount, ok
	return nil
}

func (f *RedemptionFlow) AttachBillImage(url string) error {
	if f.state != FlowAmountEntry {
		return fmt.Errorf("%w: bill image from %s", ErrInvalidTransition, f.state)
	}
	f.billImage = url
	return nil
}

// DiscountValue is the money value of the discount for the entered amount.
func (f *RedemptionFlow) DiscountValue() float64 {
	return utils.CalculateDiscount(f.amount, f.coupon.DiscountPercent)
}

// Submit posts the redemption once. On failure the flow stays in amount
// entry; a second Submit sends a second record.
func (f *RedemptionFlow) Submit(ctx context.Context) (*models.RedemptionRecord, error) {
	if f.state != FlowAmountEntry {
		return nil, fmt.Errorf("%w: submit from %s", ErrInvalidTransition, f.state)
	}
	if !f.hasAmount {
		return nil, ErrAmountRequired
	}

	ctx = f.ctx(ctx)
	session, err := f.svc.sessions.RequireRole(ctx, models.RoleBusinessOwner, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	record := &models.RedemptionRecord{
		CouponID:   f.coupon.ID,
		DateTime:   utils.FormatTime(f.svc.clock(), f.svc.timezone),
		Discount:   f.DiscountValue(),
		BillImage:  f.billImage,
		BusinessID: session.UserID,
	}

	if err := f.svc.client.CreateRedemption(ctx, record); err != nil {
		f.logger.WithError(err).LogRedemptionEvent(record.CouponID, "submit_failed", f.amount, record.Discount)
		var se *backend.StatusError
		if errors.As(err, &se) {
			return nil, &RequestError{Op: ErrRedemptionFailed, Message: se.Message, Err: err}
		}
		return nil, fmt.Errorf("%w: %w", ErrRedemptionFailed, err)
	}

	f.logger.LogRedemptionEvent(record.CouponID, "submitted", f.amount, record.Discount)
	f.state = FlowSubmitted
	return record, nil
}

// Dismiss returns the flow to Idle from any state and forgets everything.
func (f *RedemptionFlow) Dismiss() {
	if f.state != FlowIdle {
		f.logger.WithField("from", f.state.String()).Debug("Flow dismissed")
	}
	f.state = FlowIdle
	f.coupon = models.Coupon{}
	f.amount, f.hasAmount = 0, false
	f.billImage = ""
}
