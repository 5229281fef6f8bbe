package applicant

import (
	"net/http"

	"github.com/mehrab1899/ats-backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICANT")

// Error codes
var (
	CodeApplicantNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Applicant not found")
	CodeAlreadyApplied    = ErrRegistry.Register("ALREADY_APPLIED", errx.TypeConflict, http.StatusConflict, "An application with this email already exists")
	CodeInvalidStage      = ErrRegistry.Register("INVALID_STAGE", errx.TypeValidation, http.StatusBadRequest, "Invalid applicant stage")
	CodeMissingUpload     = ErrRegistry.Register("MISSING_UPLOAD", errx.TypeValidation, http.StatusBadRequest, "CV and cover letter are required")
	CodeInvalidJob        = ErrRegistry.Register("INVALID_JOB", errx.TypeValidation, http.StatusBadRequest, "Job not found")
)

// Helper functions
func ErrApplicantNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicantNotFound)
}

func ErrAlreadyApplied() *errx.Error {
	return ErrRegistry.New(CodeAlreadyApplied)
}

func ErrInvalidStage() *errx.Error {
	return ErrRegistry.New(CodeInvalidStage)
}

func ErrMissingUpload() *errx.Error {
	return ErrRegistry.New(CodeMissingUpload)
}

func ErrInvalidJob() *errx.Error {
	return ErrRegistry.New(CodeInvalidJob)
}
