package validators

import (
	"strings"

	"couponscan/internal/models"
)

// ValidateRegistration normalizes req in place and validates it.
func ValidateRegistration(req *models.RegisterRequest) ValidationErrors {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.PhoneNo = strings.NewReplacer(" ", "", "-", "").Replace(req.PhoneNo)

	return ValidateStruct(req)
}

// ValidateLogin only checks presence; the server owns credential rules.
func ValidateLogin(identifier, password string) ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(identifier) == "" || password == "" {
		errs = append(errs, ValidationError{
			Field:   "credentials",
			Tag:     "required",
			Message: "Please fill in both username and password.",
		})
	}
	return errs
}
