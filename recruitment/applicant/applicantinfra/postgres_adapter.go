package applicantinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
	"github.com/mehrab1899/ats-backend/pkg/predx"
	"github.com/mehrab1899/ats-backend/recruitment/applicant"
)

// searchColumns maps filter fields onto the applicant list query. The job
// title is filterable through the join.
var searchColumns = predx.Columns{
	predx.FieldFirstName: "a.first_name",
	predx.FieldLastName:  "a.last_name",
	predx.FieldEmail:     "a.email",
	predx.FieldPhone:     "a.phone",
	predx.FieldStage:     "a.stage",
	predx.FieldJobTitle:  "j.title",
}

// PostgresApplicantRepository implements applicant.Repository using PostgreSQL
type PostgresApplicantRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicantRepository creates a new PostgreSQL applicant repository
func NewPostgresApplicantRepository(db *sqlx.DB) *PostgresApplicantRepository {
	return &PostgresApplicantRepository{
		db: db,
	}
}

type applicantModel struct {
	ID             string    `db:"id"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Email          string    `db:"email"`
	Phone          string    `db:"phone"`
	JobID          string    `db:"job_id"`
	Stage          string    `db:"stage"`
	CVURL          string    `db:"cv_url"`
	CoverLetterURL string    `db:"cover_letter_url"`
	Message        *string   `db:"message"`
	AppliedAt      time.Time `db:"applied_at"`
}

type applicantRowModel struct {
	applicantModel
	JobTitle string `db:"job_title"`
}

func (m *applicantModel) toEntity() *applicant.Applicant {
	return &applicant.Applicant{
		ID:             kernel.ApplicantID(m.ID),
		FirstName:      kernel.FirstName(m.FirstName),
		LastName:       kernel.LastName(m.LastName),
		Email:          kernel.Email(m.Email),
		Phone:          kernel.Phone(m.Phone),
		JobID:          kernel.JobID(m.JobID),
		Stage:          applicant.Stage(m.Stage),
		CVURL:          kernel.BlobURL(m.CVURL),
		CoverLetterURL: kernel.BlobURL(m.CoverLetterURL),
		Message:        m.Message,
		AppliedAt:      m.AppliedAt,
	}
}

func fromEntity(a *applicant.Applicant) *applicantModel {
	return &applicantModel{
		ID:             string(a.ID),
		FirstName:      string(a.FirstName),
		LastName:       string(a.LastName),
		Email:          string(a.Email),
		Phone:          string(a.Phone),
		JobID:          string(a.JobID),
		Stage:          string(a.Stage),
		CVURL:          string(a.CVURL),
		CoverLetterURL: string(a.CoverLetterURL),
		Message:        a.Message,
		AppliedAt:      a.AppliedAt,
	}
}

// Create persists a new applicant
func (r *PostgresApplicantRepository) Create(ctx context.Context, applicantEntity *applicant.Applicant) error {
	model := fromEntity(applicantEntity)

	query := `
		INSERT INTO applicants (
			id, first_name, last_name, email, phone, job_id,
			stage, cv_url, cover_letter_url, message, applied_at
		) VALUES (
			:id, :first_name, :last_name, :email, :phone, :job_id,
			:stage, :cv_url, :cover_letter_url, :message, :applied_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return applicant.ErrAlreadyApplied().WithDetail("email", string(applicantEntity.Email))
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid job_id: %w", err)
			}
		}
		return fmt.Errorf("failed to create applicant: %w", err)
	}

	return nil
}

// GetByID retrieves an applicant by ID
func (r *PostgresApplicantRepository) GetByID(ctx context.Context, id kernel.ApplicantID) (*applicant.Applicant, error) {
	query := `
		SELECT
			id, first_name, last_name, email, phone, job_id,
			stage, cv_url, cover_letter_url, message, applied_at
		FROM applicants
		WHERE id = $1
	`

	var model applicantModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, applicant.ErrApplicantNotFound()
		}
		return nil, fmt.Errorf("failed to get applicant by id: %w", err)
	}

	return model.toEntity(), nil
}

// ExistsByEmail checks whether an applicant with the email already exists
func (r *PostgresApplicantRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applicants WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(email))
	if err != nil {
		return false, fmt.Errorf("failed to check applicant existence: %w", err)
	}

	return exists, nil
}

// List fetches one cursor window of applicant rows matching the predicate
func (r *PostgresApplicantRepository) List(ctx context.Context, filter predx.Predicate, window kernel.CursorWindow) ([]applicant.Row, error) {
	clause, args, err := predx.Compile(filter, searchColumns, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to compile applicant filter: %w", err)
	}

	conditions := ""
	if clause != "" {
		conditions = "WHERE " + clause
	}

	// Keyset boundary on the (applied_at, id) ordering pair. Forward pages
	// read strictly older rows than the cursor, backward pages strictly newer.
	order := "DESC"
	if window.Boundary != nil {
		op := "<"
		if window.Backward {
			op = ">"
		}
		sep := "WHERE"
		if conditions != "" {
			sep = conditions + " AND"
		}
		conditions = fmt.Sprintf("%s (a.applied_at, a.id) %s ($%d, $%d)", sep, op, len(args)+1, len(args)+2)
		args = append(args, window.Boundary.At, window.Boundary.ID)
	}
	if window.Backward {
		order = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT
			a.id, a.first_name, a.last_name, a.email, a.phone, a.job_id,
			a.stage, a.cv_url, a.cover_letter_url, a.message, a.applied_at,
			j.title AS job_title
		FROM applicants a
		JOIN jobs j ON j.id = a.job_id
		%s
		ORDER BY a.applied_at %s, a.id %s
		LIMIT $%d
	`, conditions, order, order, len(args)+1)
	args = append(args, window.Limit)

	var models []applicantRowModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}

	rows := make([]applicant.Row, 0, len(models))
	for _, model := range models {
		rows = append(rows, applicant.Row{
			Applicant: *model.toEntity(),
			JobTitle:  kernel.JobTitle(model.JobTitle),
		})
	}

	return rows, nil
}

// Count counts all applicants matching the predicate
func (r *PostgresApplicantRepository) Count(ctx context.Context, filter predx.Predicate) (int, error) {
	clause, args, err := predx.Compile(filter, searchColumns, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to compile applicant filter: %w", err)
	}

	query := `
		SELECT COUNT(*)
		FROM applicants a
		JOIN jobs j ON j.id = a.job_id
	`
	if clause != "" {
		query += " WHERE " + clause
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count applicants: %w", err)
	}

	return total, nil
}

// UpdateStage moves an applicant to a new pipeline stage
func (r *PostgresApplicantRepository) UpdateStage(ctx context.Context, id kernel.ApplicantID, stage applicant.Stage) error {
	query := `UPDATE applicants SET stage = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, string(stage), string(id))
	if err != nil {
		return fmt.Errorf("failed to update applicant stage: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return applicant.ErrApplicantNotFound()
	}

	return nil
}
