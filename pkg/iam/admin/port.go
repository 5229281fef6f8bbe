package admin

import (
	"context"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

type Repository interface {
	// Create persists a new admin
	Create(ctx context.Context, admin *Admin) error

	// FindByID retrieves an admin by ID
	FindByID(ctx context.Context, id kernel.AdminID) (*Admin, error)

	// FindByEmail retrieves an admin by email
	FindByEmail(ctx context.Context, email kernel.Email) (*Admin, error)
}
