package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
	"github.com/mehrab1899/ats-backend/pkg/predx"
	"github.com/mehrab1899/ats-backend/recruitment/job"
)

// searchColumns maps filter fields onto the admin job list query.
var searchColumns = predx.Columns{
	predx.FieldJobTitle:       "j.title",
	predx.FieldJobDescription: "j.description",
	predx.FieldJobStatus:      "j.status",
	predx.FieldJobType:        "j.job_type",
}

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

type jobModel struct {
	ID             string          `db:"id"`
	Title          string          `db:"title"`
	Description    string          `db:"description"`
	Status         string          `db:"status"`
	JobType        string          `db:"job_type"`
	SkillsRequired json.RawMessage `db:"skills_required"`
	Benefits       json.RawMessage `db:"benefits"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type adminRowModel struct {
	jobModel
	ApplicantCount int `db:"applicant_count"`
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() (*job.Job, error) {
	var skills []kernel.Skill
	if len(m.SkillsRequired) > 0 {
		if err := json.Unmarshal(m.SkillsRequired, &skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
		}
	}

	var benefits []kernel.Benefit
	if len(m.Benefits) > 0 {
		if err := json.Unmarshal(m.Benefits, &benefits); err != nil {
			return nil, fmt.Errorf("failed to unmarshal benefits: %w", err)
		}
	}

	return &job.Job{
		ID:             kernel.JobID(m.ID),
		Title:          kernel.JobTitle(m.Title),
		Description:    kernel.JobDescription(m.Description),
		Status:         job.Status(m.Status),
		Type:           job.Type(m.JobType),
		SkillsRequired: skills,
		Benefits:       benefits,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) (*jobModel, error) {
	skills, err := json.Marshal(j.SkillsRequired)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	benefits, err := json.Marshal(j.Benefits)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal benefits: %w", err)
	}

	return &jobModel{
		ID:             string(j.ID),
		Title:          string(j.Title),
		Description:    string(j.Description),
		Status:         string(j.Status),
		JobType:        string(j.Type),
		SkillsRequired: skills,
		Benefits:       benefits,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}, nil
}

// Create persists a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (
			id, title, description, status, job_type,
			skills_required, benefits, created_at, updated_at
		) VALUES (
			:id, :title, :description, :status, :job_type,
			:skills_required, :benefits, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return fmt.Errorf("duplicate job id: %w", err)
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE jobs SET
			title = :title,
			description = :description,
			status = :status,
			job_type = :job_type,
			skills_required = :skills_required,
			benefits = :benefits,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `
		SELECT id, title, description, status, job_type,
		       skills_required, benefits, created_at, updated_at
		FROM jobs
		WHERE id = $1
	`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity()
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}

// ListOpen fetches one cursor window of OPEN jobs
func (r *PostgresJobRepository) ListOpen(ctx context.Context, window kernel.CursorWindow) ([]job.Job, error) {
	conditions := `WHERE status = 'OPEN'`
	args := []interface{}{}

	order := "DESC"
	if window.Boundary != nil {
		op := "<"
		if window.Backward {
			op = ">"
		}
		conditions += fmt.Sprintf(" AND (created_at, id) %s ($%d, $%d)", op, len(args)+1, len(args)+2)
		args = append(args, window.Boundary.At, window.Boundary.ID)
	}
	if window.Backward {
		order = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, status, job_type,
		       skills_required, benefits, created_at, updated_at
		FROM jobs
		%s
		ORDER BY created_at %s, id %s
		LIMIT $%d
	`, conditions, order, order, len(args)+1)
	args = append(args, window.Limit)

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list open jobs: %w", err)
	}

	entities := make([]job.Job, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return entities, nil
}

// CountOpen counts all OPEN jobs
func (r *PostgresJobRepository) CountOpen(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM jobs WHERE status = 'OPEN'`); err != nil {
		return 0, fmt.Errorf("failed to count open jobs: %w", err)
	}
	return total, nil
}

// List retrieves the admin job rows matching the predicate, with per-row
// application counts
func (r *PostgresJobRepository) List(ctx context.Context, filter predx.Predicate, pagination kernel.PaginationOptions) (*kernel.Paginated[job.AdminRow], error) {
	clause, args, err := predx.Compile(filter, searchColumns, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to compile job filter: %w", err)
	}

	whereClause := ""
	if clause != "" {
		whereClause = "WHERE " + clause
	}

	// Count total
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM jobs j %s`, whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	// Calculate pagination
	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := fmt.Sprintf(`
		SELECT
			j.id, j.title, j.description, j.status, j.job_type,
			j.skills_required, j.benefits, j.created_at, j.updated_at,
			(SELECT COUNT(*) FROM applicants a WHERE a.job_id = j.id) AS applicant_count
		FROM jobs j
		%s
		ORDER BY j.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)
	args = append(args, pagination.PageSize, offset)

	var models []adminRowModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	rows := make([]job.AdminRow, 0, len(models))
	for _, model := range models {
		entity, err := model.toEntity()
		if err != nil {
			return nil, err
		}
		rows = append(rows, job.AdminRow{
			Job:            *entity,
			ApplicantCount: model.ApplicantCount,
		})
	}

	return &kernel.Paginated[job.AdminRow]{
		Items: rows,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(rows) == 0,
	}, nil
}

// UpdateStatus moves a job to a new status
func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id kernel.JobID, status job.Status) error {
	query := `UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, string(status), time.Now(), string(id))
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}
