package analytics

import (
	"context"
	"time"

	"github.com/mehrab1899/ats-backend/recruitment/applicant"
)

// Repository is the read-only aggregation port of the analytics module.
type Repository interface {
	// CountOpenJobs counts jobs currently in status OPEN
	CountOpenJobs(ctx context.Context) (int, error)

	// CountApplicants counts all applicants
	CountApplicants(ctx context.Context) (int, error)

	// CountApplicantsByStage counts applicants currently in the stage
	CountApplicantsByStage(ctx context.Context, stage applicant.Stage) (int, error)

	// TopJob returns the job with the most applications, or nil when there
	// are no applicants at all
	TopJob(ctx context.Context) (*TopJob, error)

	// JobsCreatedByMonth aggregates jobs by creation month since from
	JobsCreatedByMonth(ctx context.Context, from time.Time) ([]MonthBucket, error)

	// ApplicantsByMonth aggregates applicants by application month since from
	ApplicantsByMonth(ctx context.Context, from time.Time) ([]MonthBucket, error)

	// HiredByApplicationMonth aggregates applicants currently HIRED by the
	// month they applied in, since from
	HiredByApplicationMonth(ctx context.Context, from time.Time) ([]MonthBucket, error)
}
