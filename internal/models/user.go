package models

import "time"

type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	UserName string `json:"userName,omitempty"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role"`
	Status  string `json:"status"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

type RegisterRequest struct {
	Name     string        `json:"name" validate:"required,min=2,max=100"`
	Email    string        `json:"email" validate:"required,email"`
	PhoneNo  string        `json:"phoneNo" validate:"required,phone_number"`
	Password string        `json:"password" validate:"required,strong_password"`
	Role     UserRole      `json:"role" validate:"required,user_role"`
	Status   AccountStatus `json:"status" validate:"required,account_status"`
}

// ErrorBody is the JSON error shape returned by the backend.
type ErrorBody struct {
	Message string `json:"message"`
}

// User is an account as held by the development backend.
type User struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	UserName     string        `json:"userName,omitempty"`
	Email        string        `json:"email"`
	PhoneNo      string        `json:"phoneNo"`
	PasswordHash string        `json:"-"`
	Role         UserRole      `json:"role"`
	Status       AccountStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}
