package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"

	"golang.org/x/crypto/bcrypt"
)

type SeedUser struct {
	Name     string               `json:"name"`
	UserName string               `json:"userName"`
	Email    string               `json:"email"`
	PhoneNo  string               `json:"phoneNo"`
	Password string               `json:"password"`
	Role     models.UserRole      `json:"role"`
	Status   models.AccountStatus `json:"status"`
}

type SeedData struct {
	Users   []SeedUser      `json:"users"`
	Coupons []models.Coupon `json:"coupons"`
}

// DefaultSeed is loaded when no seed file is configured.
func DefaultSeed() *SeedData {
	return &SeedData{
		Users: []SeedUser{
			{Name: "Demo Owner", UserName: "owner", Email: "owner@example.com", PhoneNo: "0771234567", Password: "Owner#123", Role: models.RoleBusinessOwner, Status: models.AccountApproved},
			{Name: "Pending Owner", UserName: "pending", Email: "pending@example.com", PhoneNo: "0771234568", Password: "Pending#123", Role: models.RoleBusinessOwner, Status: models.AccountPending},
			{Name: "Admin", UserName: "admin", Email: "admin@example.com", PhoneNo: "0771234569", Password: "Admin#123", Role: models.RoleAdmin, Status: models.AccountApproved},
			{Name: "Demo Customer", UserName: "customer", Email: "customer@example.com", PhoneNo: "0771234570", Password: "Customer#123", Role: models.RoleCustomer, Status: models.AccountApproved},
		},
		Coupons: []models.Coupon{
			{ID: 1, Code: "WELCOME20", Status: models.CouponStatusIssued, DiscountPercent: 20},
			{ID: 2, Code: "USED10", Status: models.CouponStatusUsed, DiscountPercent: 10},
			{ID: 3, Code: "GONE15", Status: models.CouponStatusDeleted, DiscountPercent: 15},
			{ID: 4, Code: "SOON5", Status: models.CouponStatusPending, DiscountPercent: 5},
		},
	}
}

func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for i := range data.Coupons {
		data.Coupons[i].Status = models.ParseCouponStatus(string(data.Coupons[i].Status))
	}
	return &data, nil
}

// Seed hashes the plain seed passwords and loads everything into the repositories.
func Seed(ctx context.Context, data *SeedData, users interfaces.UserRepository, coupons interfaces.CouponRepository) error {
	for _, u := range data.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.MinCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		if err := users.Create(ctx, &models.User{
			Name:         u.Name,
			UserName:     u.UserName,
			Email:        u.Email,
			PhoneNo:      u.PhoneNo,
			PasswordHash: string(hash),
			Role:         u.Role,
			Status:       u.Status,
		}); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
	}

	for i := range data.Coupons {
		coupon := data.Coupons[i]
		if err := coupons.Create(ctx, &coupon); err != nil {
			return fmt.Errorf("failed to seed coupon %s: %w", coupon.Code, err)
		}
	}

	return nil
}
