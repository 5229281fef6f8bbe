package job

import (
	"context"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
	"github.com/mehrab1899/ats-backend/pkg/predx"
)

type Repository interface {
	// Create persists a new job
	Create(ctx context.Context, job *Job) error

	// Update replaces the mutable fields of an existing job
	Update(ctx context.Context, id kernel.JobID, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// ListOpen fetches one cursor window of OPEN jobs, ordered (created_at,
	// id): descending for forward windows, ascending for backward ones
	ListOpen(ctx context.Context, window kernel.CursorWindow) ([]Job, error)

	// CountOpen counts all OPEN jobs
	CountOpen(ctx context.Context) (int, error)

	// List retrieves the admin job rows matching the predicate, with
	// per-row application counts
	List(ctx context.Context, filter predx.Predicate, pagination kernel.PaginationOptions) (*kernel.Paginated[AdminRow], error)

	// UpdateStatus moves a job to a new status
	UpdateStatus(ctx context.Context, id kernel.JobID, status Status) error
}
