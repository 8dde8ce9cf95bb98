package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
)

type couponRepository struct {
	mu      sync.RWMutex
	nextID  int64
	coupons map[int64]*models.Coupon
}

func NewCouponRepository() interfaces.CouponRepository {
	return &couponRepository{coupons: make(map[int64]*models.Coupon)}
}

// Create keeps a caller supplied id, otherwise assigns the next one.
func (r *couponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if coupon.ID == 0 {
		r.nextID++
		coupon.ID = r.nextID
	} else if coupon.ID > r.nextID {
		r.nextID = coupon.ID
	}

	stored := *coupon
	r.coupons[coupon.ID] = &stored
	return nil
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.coupons {
		if strings.EqualFold(c.Code, code) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, interfaces.ErrCouponNotFound
}

func (r *couponRepository) GetByID(ctx context.Context, id int64) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.coupons[id]
	if !ok {
		return nil, interfaces.ErrCouponNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *couponRepository) UpdateStatus(ctx context.Context, id int64, status models.CouponStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.coupons[id]
	if !ok {
		return interfaces.ErrCouponNotFound
	}
	c.Status = status
	return nil
}

func (r *couponRepository) MarkUsed(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.coupons[id]
	if !ok {
		return interfaces.ErrCouponNotFound
	}
	if !c.Status.Redeemable() {
		return interfaces.ErrCouponNotRedeemable
	}
	c.Status = models.CouponStatusUsed
	return nil
}

type redemptionRepository struct {
	mu      sync.RWMutex
	records []*models.Redemption
}

func NewRedemptionRepository() interfaces.RedemptionRepository {
	return &redemptionRepository{}
}

func (r *redemptionRepository) Create(ctx context.Context, record *models.Redemption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = int64(len(r.records) + 1)
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	stored := *record
	r.records = append(r.records, &stored)
	return nil
}

func (r *redemptionRepository) ListByBusiness(ctx context.Context, businessID int64) ([]*models.Redemption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Redemption
	for _, rec := range r.records {
		if rec.BusinessID == businessID {
			copied := *rec
			out = append(out, &copied)
		}
	}
	return out, nil
}
