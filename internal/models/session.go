package models

import "strings"

type UserRole string

const (
	RoleCustomer      UserRole = "CUSTOMER"
	RoleBusinessOwner UserRole = "BUSINESS_OWNER"
	RoleAdmin         UserRole = "ADMIN"
)

// ParseUserRole normalizes a server role string. The second result is false
// for anything outside the known roles.
func ParseUserRole(s string) (UserRole, bool) {
	switch r := UserRole(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleBusinessOwner, RoleAdmin:
		return r, true
	default:
		return r, false
	}
}

type AccountStatus string

const (
	AccountPending  AccountStatus = "PENDING"
	AccountApproved AccountStatus = "APPROVED"
)

func ParseAccountStatus(s string) (AccountStatus, bool) {
	switch st := AccountStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case AccountPending, AccountApproved:
		return st, true
	default:
		return st, false
	}
}

// Session is the locally persisted record of a logged in user. It is stored
// and replaced as a single JSON document.
type Session struct {
	Token     string        `json:"token"`
	ExpiresAt int64         `json:"exp"`
	Role      UserRole      `json:"role"`
	Status    AccountStatus `json:"status"`
	Email     string        `json:"email,omitempty"`
	UserID    int64         `json:"id,omitempty"`
	Name      string        `json:"name,omitempty"`
}

// Complete reports whether every required field is populated.
func (s *Session) Complete() bool {
	return s != nil && s.Token != "" && s.Role != "" && s.Status != ""
}

func (s *Session) HasRole(roles ...UserRole) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
