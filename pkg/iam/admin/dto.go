package admin

import (
	"time"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

// SignupRequest - DTO for registering a new admin
type SignupRequest struct {
	Email     kernel.Email     `json:"email" validate:"required"`
	Password  string           `json:"password" validate:"required"`
	FirstName kernel.FirstName `json:"first_name" validate:"required"`
	LastName  kernel.LastName  `json:"last_name" validate:"required"`
}

// LoginRequest - DTO for authenticating an admin
type LoginRequest struct {
	Email    kernel.Email `json:"email" validate:"required"`
	Password string       `json:"password" validate:"required"`
}

// AdminResponse - DTO for returning admin data, never the password hash
type AdminResponse struct {
	ID        kernel.AdminID   `json:"id"`
	Email     kernel.Email     `json:"email"`
	FirstName kernel.FirstName `json:"first_name"`
	LastName  kernel.LastName  `json:"last_name"`
	CreatedAt time.Time        `json:"created_at"`
}

// AuthResponse - DTO returned by signup and login
type AuthResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}
