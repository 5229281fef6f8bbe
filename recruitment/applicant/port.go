package applicant

import (
	"context"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
	"github.com/mehrab1899/ats-backend/pkg/predx"
)

type Repository interface {
	// Create persists a new applicant
	Create(ctx context.Context, applicant *Applicant) error

	// GetByID retrieves an applicant by ID
	GetByID(ctx context.Context, id kernel.ApplicantID) (*Applicant, error)

	// ExistsByEmail checks whether an applicant with the email already exists
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)

	// List fetches one cursor window of applicant rows matching the
	// predicate, ordered (applied_at, id): descending for forward windows,
	// ascending for backward ones
	List(ctx context.Context, filter predx.Predicate, window kernel.CursorWindow) ([]Row, error)

	// Count counts all applicants matching the predicate, ignoring any window
	Count(ctx context.Context, filter predx.Predicate) (int, error)

	// UpdateStage moves an applicant to a new pipeline stage
	UpdateStage(ctx context.Context, id kernel.ApplicantID, stage Stage) error
}
