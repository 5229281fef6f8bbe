package job

import (
	"strings"
	"time"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

// Status represents the lifecycle state of a job posting
type Status string

const (
	StatusOpen   Status = "OPEN"   // Published and accepting applications
	StatusClosed Status = "CLOSED" // No longer accepting applications
	StatusDraft  Status = "DRAFT"  // Not yet published
)

// Type represents the employment type of a job
type Type string

const (
	TypeFullTime Type = "FULL_TIME"
	TypePartTime Type = "PART_TIME"
	TypeContract Type = "CONTRACT"
)

// ParseStatus normalizes a raw status string, case-insensitively.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusOpen:
		return StatusOpen, true
	case StatusClosed:
		return StatusClosed, true
	case StatusDraft:
		return StatusDraft, true
	}
	return "", false
}

// ParseType normalizes a raw employment type string, case-insensitively.
func ParseType(s string) (Type, bool) {
	switch Type(strings.ToUpper(strings.TrimSpace(s))) {
	case TypeFullTime:
		return TypeFullTime, true
	case TypePartTime:
		return TypePartTime, true
	case TypeContract:
		return TypeContract, true
	}
	return "", false
}

type Job struct {
	ID             kernel.JobID          `db:"id" json:"id"`
	Title          kernel.JobTitle       `db:"title" json:"title"`
	Description    kernel.JobDescription `db:"description" json:"description"`
	Status         Status                `db:"status" json:"status"`
	Type           Type                  `db:"job_type" json:"job_type"`
	SkillsRequired []kernel.Skill        `db:"skills_required" json:"skills_required"`
	Benefits       []kernel.Benefit      `db:"benefits" json:"benefits"`
	CreatedAt      time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time             `db:"updated_at" json:"updated_at"`
}

// IsOpen checks if the job is accepting applications
func (j *Job) IsOpen() bool {
	return j.Status == StatusOpen
}

// AdminRow is an admin list row: the job plus its application count derived at
// read time.
type AdminRow struct {
	Job
	ApplicantCount int `db:"applicant_count"`
}
