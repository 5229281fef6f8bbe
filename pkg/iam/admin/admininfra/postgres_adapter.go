package admininfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mehrab1899/ats-backend/pkg/iam/admin"
	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

// PostgresAdminRepository implements admin.Repository using PostgreSQL
type PostgresAdminRepository struct {
	db *sqlx.DB
}

// NewPostgresAdminRepository creates a new PostgreSQL admin repository
func NewPostgresAdminRepository(db *sqlx.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{
		db: db,
	}
}

type adminModel struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (m *adminModel) toEntity() *admin.Admin {
	return &admin.Admin{
		ID:           kernel.AdminID(m.ID),
		Email:        kernel.Email(m.Email),
		PasswordHash: m.PasswordHash,
		FirstName:    kernel.FirstName(m.FirstName),
		LastName:     kernel.LastName(m.LastName),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromEntity(a *admin.Admin) *adminModel {
	return &adminModel{
		ID:           string(a.ID),
		Email:        string(a.Email),
		PasswordHash: a.PasswordHash,
		FirstName:    string(a.FirstName),
		LastName:     string(a.LastName),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// Create persists a new admin
func (r *PostgresAdminRepository) Create(ctx context.Context, adminEntity *admin.Admin) error {
	model := fromEntity(adminEntity)

	query := `
		INSERT INTO admins (
			id, email, password_hash, first_name, last_name, created_at, updated_at
		) VALUES (
			:id, :email, :password_hash, :first_name, :last_name, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return admin.ErrAdminAlreadyExists().WithDetail("email", string(adminEntity.Email))
			}
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// FindByID retrieves an admin by ID
func (r *PostgresAdminRepository) FindByID(ctx context.Context, id kernel.AdminID) (*admin.Admin, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	var model adminModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, admin.ErrAdminNotFound()
		}
		return nil, fmt.Errorf("failed to get admin by id: %w", err)
	}

	return model.toEntity(), nil
}

// FindByEmail retrieves an admin by email
func (r *PostgresAdminRepository) FindByEmail(ctx context.Context, email kernel.Email) (*admin.Admin, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	var model adminModel
	err := r.db.GetContext(ctx, &model, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, admin.ErrAdminNotFound()
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return model.toEntity(), nil
}
