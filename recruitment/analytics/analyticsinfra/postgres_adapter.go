package analyticsinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mehrab1899/ats-backend/recruitment/analytics"
	"github.com/mehrab1899/ats-backend/recruitment/applicant"
)

// PostgresAnalyticsRepository implements analytics.Repository using PostgreSQL
type PostgresAnalyticsRepository struct {
	db *sqlx.DB
}

// NewPostgresAnalyticsRepository creates a new PostgreSQL analytics repository
func NewPostgresAnalyticsRepository(db *sqlx.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{
		db: db,
	}
}

// CountOpenJobs counts jobs currently in status OPEN
func (r *PostgresAnalyticsRepository) CountOpenJobs(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM jobs WHERE status = 'OPEN'`); err != nil {
		return 0, fmt.Errorf("failed to count open jobs: %w", err)
	}
	return count, nil
}

// CountApplicants counts all applicants
func (r *PostgresAnalyticsRepository) CountApplicants(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM applicants`); err != nil {
		return 0, fmt.Errorf("failed to count applicants: %w", err)
	}
	return count, nil
}

// CountApplicantsByStage counts applicants currently in the stage
func (r *PostgresAnalyticsRepository) CountApplicantsByStage(ctx context.Context, stage applicant.Stage) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM applicants WHERE stage = $1`
	if err := r.db.GetContext(ctx, &count, query, string(stage)); err != nil {
		return 0, fmt.Errorf("failed to count applicants by stage: %w", err)
	}
	return count, nil
}

// TopJob returns the job with the most applications
func (r *PostgresAnalyticsRepository) TopJob(ctx context.Context) (*analytics.TopJob, error) {
	query := `
		SELECT COALESCE(j.title, 'Unknown') AS title, COUNT(*) AS applications
		FROM applicants a
		LEFT JOIN jobs j ON j.id = a.job_id
		GROUP BY 1
		ORDER BY applications DESC, title ASC
		LIMIT 1
	`

	var row struct {
		Title        string `db:"title"`
		Applications int    `db:"applications"`
	}
	err := r.db.GetContext(ctx, &row, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get top job: %w", err)
	}

	return &analytics.TopJob{Title: row.Title, Applications: row.Applications}, nil
}

// JobsCreatedByMonth aggregates jobs by creation month since from
func (r *PostgresAnalyticsRepository) JobsCreatedByMonth(ctx context.Context, from time.Time) ([]analytics.MonthBucket, error) {
	return r.byMonth(ctx, `
		SELECT EXTRACT(YEAR FROM created_at)::int AS year,
		       EXTRACT(MONTH FROM created_at)::int AS month,
		       COUNT(*)::int AS count
		FROM jobs
		WHERE created_at >= $1
		GROUP BY 1, 2
	`, from)
}

// ApplicantsByMonth aggregates applicants by application month since from
func (r *PostgresAnalyticsRepository) ApplicantsByMonth(ctx context.Context, from time.Time) ([]analytics.MonthBucket, error) {
	return r.byMonth(ctx, `
		SELECT EXTRACT(YEAR FROM applied_at)::int AS year,
		       EXTRACT(MONTH FROM applied_at)::int AS month,
		       COUNT(*)::int AS count
		FROM applicants
		WHERE applied_at >= $1
		GROUP BY 1, 2
	`, from)
}

// HiredByApplicationMonth aggregates applicants currently HIRED by the month
// they applied in, since from
func (r *PostgresAnalyticsRepository) HiredByApplicationMonth(ctx context.Context, from time.Time) ([]analytics.MonthBucket, error) {
	return r.byMonth(ctx, `
		SELECT EXTRACT(YEAR FROM applied_at)::int AS year,
		       EXTRACT(MONTH FROM applied_at)::int AS month,
		       COUNT(*)::int AS count
		FROM applicants
		WHERE stage = 'HIRED' AND applied_at >= $1
		GROUP BY 1, 2
	`, from)
}

func (r *PostgresAnalyticsRepository) byMonth(ctx context.Context, query string, from time.Time) ([]analytics.MonthBucket, error) {
	var buckets []analytics.MonthBucket
	if err := r.db.SelectContext(ctx, &buckets, query, from); err != nil {
		return nil, fmt.Errorf("failed to aggregate by month: %w", err)
	}
	return buckets, nil
}
