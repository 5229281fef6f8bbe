package applicant

import (
	"strings"
	"time"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

// Stage represents where an applicant sits in the hiring pipeline
type Stage string

const (
	StageApplied     Stage = "APPLIED"     // Default stage on submission
	StageShortlisted Stage = "SHORTLISTED" // Selected for further review
	StageInterviewed Stage = "INTERVIEWED" // Interview completed
	StageHired       Stage = "HIRED"       // Offer accepted
	StageRejected    Stage = "REJECTED"    // Out of the pipeline
)

// ParseStage normalizes a raw stage string. Matching is case-insensitive;
// unknown values report ok=false.
func ParseStage(s string) (Stage, bool) {
	switch Stage(strings.ToUpper(strings.TrimSpace(s))) {
	case StageApplied:
		return StageApplied, true
	case StageShortlisted:
		return StageShortlisted, true
	case StageInterviewed:
		return StageInterviewed, true
	case StageHired:
		return StageHired, true
	case StageRejected:
		return StageRejected, true
	}
	return "", false
}

type Applicant struct {
	ID             kernel.ApplicantID `db:"id" json:"id"`
	FirstName      kernel.FirstName   `db:"first_name" json:"first_name"`
	LastName       kernel.LastName    `db:"last_name" json:"last_name"`
	Email          kernel.Email       `db:"email" json:"email"`
	Phone          kernel.Phone       `db:"phone" json:"phone"`
	JobID          kernel.JobID       `db:"job_id" json:"job_id"`
	Stage          Stage              `db:"stage" json:"stage"`
	CVURL          kernel.BlobURL     `db:"cv_url" json:"cv_url"`
	CoverLetterURL kernel.BlobURL     `db:"cover_letter_url" json:"cover_letter_url"`
	Message        *string            `db:"message" json:"message,omitempty"`
	AppliedAt      time.Time          `db:"applied_at" json:"applied_at"`
}

// Row is a list row: the applicant joined with the title of the job they
// applied to.
type Row struct {
	Applicant
	JobTitle kernel.JobTitle `db:"job_title"`
}
