package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is shared by public registration and admin user creation.
// Public registration further restricts role to the patient-like roles.
type RegisterRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email,orgemail"`
	Password  string  `json:"password" validate:"required,min=8,max=72"`
	Role      string  `json:"role" validate:"required,oneof=admin doctor doctor_assistant student teacher employer"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=male female"`
	Birthdate *string `json:"birthdate" validate:"omitempty,date"`
	PhoneNum  *string `json:"phone_num" validate:"omitempty,max=20"`
	Address   *string `json:"address" validate:"omitempty,max=500"`
}

// Response DTOs

type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Gender    *string   `json:"gender"`
	Birthdate *string   `json:"birthdate"`
	PhoneNum  *string   `json:"phone_num"`
	Address   *string   `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummary is the compact form embedded in other resources.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
