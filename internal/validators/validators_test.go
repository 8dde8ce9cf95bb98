package validators

import (
	"errors"
	"testing"

	"couponscan/internal/models"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantOK  bool
		wantErr bool
	}{
		{"12", 12, true, false},
		{"12.5", 12.5, true, false},
		{"0.5", 0.5, true, false},
		{".5", 0.5, true, false},
		{"12.", 12, true, false},
		{"", 0, false, false},
		{"12.5.6", 0, false, true},
		{"abc", 0, false, true},
		{"-5", 0, false, true},
		{"1e3", 0, false, true},
		{".", 0, false, true},
		{" 12", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok, err := ParseAmount(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmount(%q) err = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ParseAmount(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func validRegistration() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "Nimal Perera",
		Email:    "Nimal@Example.com ",
		PhoneNo:  "077 123 4567",
		Password: "Secret#123",
		Role:     models.RoleCustomer,
		Status:   models.AccountApproved,
	}
}

func TestValidateRegistrationNormalizes(t *testing.T) {
	req := validRegistration()

	if errs := ValidateRegistration(&req); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if req.Email != "nimal@example.com" {
		t.Fatalf("email not normalized: %q", req.Email)
	}
	if req.PhoneNo != "0771234567" {
		t.Fatalf("phone not normalized: %q", req.PhoneNo)
	}
}

func TestValidateRegistrationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RegisterRequest)
		field  string
		tag    string
	}{
		{"missing name", func(r *models.RegisterRequest) { r.Name = "" }, "name", "required"},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }, "email", "email"},
		{"bad phone", func(r *models.RegisterRequest) { r.PhoneNo = "12345" }, "phoneNo", "phone_number"},
		{"weak password", func(r *models.RegisterRequest) { r.Password = "password" }, "password", "strong_password"},
		{"unknown role", func(r *models.RegisterRequest) { r.Role = "GUEST" }, "role", "user_role"},
		{"unknown status", func(r *models.RegisterRequest) { r.Status = "BANNED" }, "status", "account_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegistration()
			tt.mutate(&req)

			errs := ValidateRegistration(&req)
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %v", errs)
			}
			if errs[0].Field != tt.field || errs[0].Tag != tt.tag {
				t.Fatalf("got %s/%s, want %s/%s", errs[0].Field, errs[0].Tag, tt.field, tt.tag)
			}
			if errs[0].Message == "" {
				t.Fatal("expected a message")
			}
		})
	}
}

func TestPasswordValueNotEchoed(t *testing.T) {
	req := validRegistration()
	req.Password = "weak"

	errs := ValidateRegistration(&req)
	if len(errs) != 1 || errs[0].Value != "" {
		t.Fatalf("password leaked into error: %+v", errs)
	}
}

func TestValidateLogin(t *testing.T) {
	if errs := ValidateLogin("owner", "pw"); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for _, c := range [][2]string{{"", "pw"}, {"owner", ""}, {"  ", "pw"}} {
		errs := ValidateLogin(c[0], c[1])
		if errs.First() != "Please fill in both username and password." {
			t.Fatalf("ValidateLogin(%q, %q) = %v", c[0], c[1], errs)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	for _, p := range []string{"+94771234567", "0771234567", "077-123-4567"} {
		if !IsValidPhone(p) {
			t.Fatalf("expected %q to be valid", p)
		}
	}
	for _, p := range []string{"771234567", "+0771234567", "phone", ""} {
		if IsValidPhone(p) {
			t.Fatalf("expected %q to be invalid", p)
		}
	}
}
