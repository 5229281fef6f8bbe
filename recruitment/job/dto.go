package job

import (
	"time"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job. Status and type default to
// OPEN / FULL_TIME when omitted.
type CreateJobRequest struct {
	Title          kernel.JobTitle       `json:"title" validate:"required"`
	Description    kernel.JobDescription `json:"description" validate:"required"`
	Status         *string               `json:"status,omitempty"`
	Type           *string               `json:"job_type,omitempty"`
	SkillsRequired []kernel.Skill        `json:"skills_required,omitempty"`
	Benefits       []kernel.Benefit      `json:"benefits,omitempty"`
}

// UpdateJobRequest - DTO for a field-wise partial update
type UpdateJobRequest struct {
	Title          *kernel.JobTitle       `json:"title,omitempty"`
	Description    *kernel.JobDescription `json:"description,omitempty"`
	Status         *string                `json:"status,omitempty"`
	Type           *string                `json:"job_type,omitempty"`
	SkillsRequired *[]kernel.Skill        `json:"skills_required,omitempty"`
	Benefits       *[]kernel.Benefit      `json:"benefits,omitempty"`
}

// Response - DTO for returning job data
type Response struct {
	ID             string                `json:"id"`
	Title          kernel.JobTitle       `json:"title"`
	Description    kernel.JobDescription `json:"description"`
	Status         Status                `json:"status"`
	Type           Type                  `json:"job_type"`
	SkillsRequired []kernel.Skill        `json:"skills_required"`
	Benefits       []kernel.Benefit      `json:"benefits"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// AdminRowResponse - DTO for one admin list row
type AdminRowResponse struct {
	ID             string          `json:"id"`
	Title          kernel.JobTitle `json:"title"`
	Status         Status          `json:"status"`
	Type           Type            `json:"job_type"`
	ApplicantCount int             `json:"applicant_count"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AdminListResponse - DTO for the admin job list
type AdminListResponse struct {
	Rows       []AdminRowResponse `json:"rows"`
	TotalCount int                `json:"total_count"`
}

// PublicConnection type alias for the public cursor-paginated job list
type PublicConnection = kernel.Connection[Response]
