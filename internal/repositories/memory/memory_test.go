package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
)

func TestUserRepositoryUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u := &models.User{Name: "A", UserName: "owner", Email: "a@example.com"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	if u.ID != 1 {
		t.Fatalf("id = %d", u.ID)
	}

	if err := repo.Create(ctx, &models.User{Email: "A@Example.com"}); !errors.Is(err, interfaces.ErrDuplicateUser) {
		t.Fatalf("duplicate email err = %v", err)
	}
	if err := repo.Create(ctx, &models.User{Email: "b@example.com", UserName: "OWNER"}); !errors.Is(err, interfaces.ErrDuplicateUser) {
		t.Fatalf("duplicate user name err = %v", err)
	}

	got, err := repo.GetByUserName(ctx, "Owner")
	if err != nil || got.ID != 1 {
		t.Fatalf("GetByUserName = %+v, %v", got, err)
	}
	if _, err := repo.GetByEmail(ctx, "missing@example.com"); !errors.Is(err, interfaces.ErrUserNotFound) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestCouponRepositoryStatusUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository()

	c := &models.Coupon{ID: 10, Code: "ABC", Status: models.CouponStatusIssued, DiscountPercent: 20}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatal(err)
	}
	next := &models.Coupon{Code: "DEF"}
	if err := repo.Create(ctx, next); err != nil || next.ID != 11 {
		t.Fatalf("next id = %d, %v", next.ID, err)
	}

	if err := repo.UpdateStatus(ctx, 10, models.CouponStatusUsed); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetByCode(ctx, "abc")
	if err != nil || got.Status != models.CouponStatusUsed {
		t.Fatalf("GetByCode = %+v, %v", got, err)
	}
	if err := repo.UpdateStatus(ctx, 99, models.CouponStatusUsed); !errors.Is(err, interfaces.ErrCouponNotFound) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestCouponRepositoryMarkUsedOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponRepository()
	if err := repo.Create(ctx, &models.Coupon{ID: 1, Code: "ONCE", Status: models.CouponStatusIssued}); err != nil {
		t.Fatal(err)
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.MarkUsed(ctx, 1)
			if err != nil && !errors.Is(err, interfaces.ErrCouponNotRedeemable) {
				t.Errorf("unexpected err = %v", err)
			}
			if err == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if won != 1 {
		t.Fatalf("MarkUsed succeeded %d times, want 1", won)
	}
	got, _ := repo.GetByID(ctx, 1)
	if got.Status != models.CouponStatusUsed {
		t.Fatalf("status = %s", got.Status)
	}
	if err := repo.MarkUsed(ctx, 99); !errors.Is(err, interfaces.ErrCouponNotFound) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestRedemptionRepositoryConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewRedemptionRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(business int64) {
			defer wg.Done()
			_ = repo.Create(ctx, &models.Redemption{CouponID: 1, BusinessID: business})
		}(int64(i % 2))
	}
	wg.Wait()

	even, _ := repo.ListByBusiness(ctx, 0)
	odd, _ := repo.ListByBusiness(ctx, 1)
	if len(even) != 10 || len(odd) != 10 {
		t.Fatalf("even=%d odd=%d", len(even), len(odd))
	}
}

func TestSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	raw := `{"users":[{"name":"X","userName":"x","email":"x@example.com","password":"X#123456","role":"ADMIN","status":"APPROVED"}],
"coupons":[{"coupon_id":5,"code":"FIVE","status":"issued","discount":5}]}`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	data, err := LoadSeedFile(path)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	users, coupons := NewUserRepository(), NewCouponRepository()
	if err := Seed(ctx, data, users, coupons); err != nil {
		t.Fatal(err)
	}

	u, err := users.GetByUserName(ctx, "x")
	if err != nil || u.PasswordHash == "" || u.PasswordHash == "X#123456" {
		t.Fatalf("user = %+v, %v", u, err)
	}
	c, err := coupons.GetByCode(ctx, "five")
	if err != nil || c.ID != 5 || c.Status != models.CouponStatusIssued {
		t.Fatalf("coupon = %+v, %v", c, err)
	}
}

func TestDefaultSeedLoads(t *testing.T) {
	if err := Seed(context.Background(), DefaultSeed(), NewUserRepository(), NewCouponRepository()); err != nil {
		t.Fatal(err)
	}
}
