package admin

import (
	"time"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

// Admin is a back-office user with full access to the recruitment surface.
type Admin struct {
	ID           kernel.AdminID   `db:"id" json:"id"`
	Email        kernel.Email     `db:"email" json:"email"`
	PasswordHash string           `db:"password_hash" json:"-"`
	FirstName    kernel.FirstName `db:"first_name" json:"first_name"`
	LastName     kernel.LastName  `db:"last_name" json:"last_name"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at" json:"updated_at"`
}
