package applicant

import (
	"time"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

// SubmitApplicationRequest - DTO for the public application form
type SubmitApplicationRequest struct {
	JobID     string           `json:"job_id" validate:"required"`
	FirstName kernel.FirstName `json:"first_name" validate:"required"`
	LastName  kernel.LastName  `json:"last_name" validate:"required"`
	Email     kernel.Email     `json:"email" validate:"required"`
	Phone     kernel.Phone     `json:"phone" validate:"required"`
	Message   *string          `json:"message,omitempty"`
}

// Upload is a file received by the transport layer
type Upload struct {
	Filename string
	Content  []byte
}

// RowResponse - DTO for one admin list row
type RowResponse struct {
	ID        string           `json:"id"`
	FirstName kernel.FirstName `json:"first_name"`
	LastName  kernel.LastName  `json:"last_name"`
	Email     kernel.Email     `json:"email"`
	Stage     Stage            `json:"stage"`
	AppliedAt time.Time        `json:"applied_at"`
	JobTitle  kernel.JobTitle  `json:"job_title"`
}

// JobSummary - the job an applicant applied to, as embedded in the detail view
type JobSummary struct {
	ID    string          `json:"id"`
	Title kernel.JobTitle `json:"title"`
}

// Response - DTO for the applicant detail view
type Response struct {
	ID             string           `json:"id"`
	FirstName      kernel.FirstName `json:"first_name"`
	LastName       kernel.LastName  `json:"last_name"`
	Email          kernel.Email     `json:"email"`
	Phone          kernel.Phone     `json:"phone"`
	Stage          Stage            `json:"stage"`
	CVURL          kernel.BlobURL   `json:"cv_url"`
	CoverLetterURL kernel.BlobURL   `json:"cover_letter_url"`
	Message        *string          `json:"message,omitempty"`
	AppliedAt      time.Time        `json:"applied_at"`
	Job            JobSummary       `json:"job"`
}

// Connection type alias for the admin list
type Connection = kernel.Connection[RowResponse]
