package applicantsrv

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mehrab1899/ats-backend/pkg/errx"
	"github.com/mehrab1899/ats-backend/pkg/fsx"
	"github.com/mehrab1899/ats-backend/pkg/gid"
	"github.com/mehrab1899/ats-backend/pkg/iam/auth"
	"github.com/mehrab1899/ats-backend/pkg/kernel"
	"github.com/mehrab1899/ats-backend/recruitment/applicant"
	"github.com/mehrab1899/ats-backend/recruitment/job"
)

// ApplicantService provides the public application intake and the admin
// pipeline operations
type ApplicantService struct {
	applicantRepo applicant.Repository
	jobRepo       job.Repository
	fs            fsx.FileSystem
}

// NewApplicantService creates a new instance of the applicant service
func NewApplicantService(
	applicantRepo applicant.Repository,
	jobRepo job.Repository,
	fs fsx.FileSystem,
) *ApplicantService {
	return &ApplicantService{
		applicantRepo: applicantRepo,
		jobRepo:       jobRepo,
		fs:            fs,
	}
}

// ListApplicants returns one cursor page of applicant rows matching the
// search term and stage filter. Admin only.
func (s *ApplicantService) ListApplicants(ctx context.Context, search, stage string, args kernel.CursorArgs) (*applicant.Connection, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}

	filter := applicant.BuildSearchFilter(search, stage)

	window, err := args.Window()
	if err != nil {
		return nil, err
	}

	rows, err := s.applicantRepo.List(ctx, filter, window)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applicants", errx.TypeInternal)
	}

	// Same predicate, no window: TotalCount reflects the whole matching set.
	total, err := s.applicantRepo.Count(ctx, filter)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applicants", errx.TypeInternal)
	}

	cursors := make(map[string]kernel.Cursor, len(rows))
	responses := make([]applicant.RowResponse, 0, len(rows))
	for _, row := range rows {
		resp := toRowResponse(&row)
		cursors[resp.ID] = kernel.Cursor{At: row.AppliedAt, ID: row.ID.String()}
		responses = append(responses, resp)
	}

	return kernel.BuildConnection(responses, window, total, func(r applicant.RowResponse) kernel.Cursor {
		return cursors[r.ID]
	}), nil
}

// GetApplicantByID retrieves the applicant detail view. Admin only.
func (s *ApplicantService) GetApplicantByID(ctx context.Context, id string) (*applicant.Response, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}

	applicantID := kernel.ApplicantID(gid.Decode(gid.KindApplicant, id))
	entity, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	jobEntity, err := s.jobRepo.GetByID(ctx, entity.JobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load applicant job", errx.TypeInternal)
	}

	return toResponse(entity, jobEntity), nil
}

// SubmitApplication files a public application against an open position.
// Validation runs strictly before any write: the job must exist, then the
// email must be unused, then both uploads are persisted, then the applicant
// row is created with stage APPLIED.
func (s *ApplicantService) SubmitApplication(ctx context.Context, req applicant.SubmitApplicationRequest, cv, coverLetter *applicant.Upload) (*applicant.Response, error) {
	jobID := kernel.NewJobID(gid.Decode(gid.KindJob, req.JobID))
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		// A bad job reference on a public submission is invalid input, not a
		// missing resource.
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, applicant.ErrInvalidJob().WithDetail("job_id", req.JobID)
		}
		return nil, err
	}

	taken, err := s.applicantRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check existing application", errx.TypeInternal)
	}
	if taken {
		return nil, applicant.ErrAlreadyApplied().WithDetail("email", req.Email.String())
	}

	if cv == nil || coverLetter == nil {
		return nil, applicant.ErrMissingUpload()
	}

	cvPath, err := s.storeUpload(ctx, "cv", cv)
	if err != nil {
		return nil, err
	}
	coverPath, err := s.storeUpload(ctx, "cover", coverLetter)
	if err != nil {
		return nil, err
	}

	entity := &applicant.Applicant{
		ID:             kernel.NewApplicantID(uuid.NewString()),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		JobID:          jobID,
		Stage:          applicant.StageApplied,
		CVURL:          kernel.BlobURL(s.fs.PublicURL(cvPath)),
		CoverLetterURL: kernel.BlobURL(s.fs.PublicURL(coverPath)),
		Message:        req.Message,
		AppliedAt:      time.Now(),
	}

	// The pre-check above can race; the unique index on email is the real
	// guard and the repository maps its violation to ErrAlreadyApplied.
	if err := s.applicantRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return toResponse(entity, jobEntity), nil
}

// UpdateApplicantStage moves an applicant to a new pipeline stage. Any stage
// can move to any other. Admin only.
func (s *ApplicantService) UpdateApplicantStage(ctx context.Context, id string, stage string) (*applicant.Response, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}

	parsed, ok := applicant.ParseStage(stage)
	if !ok {
		return nil, applicant.ErrInvalidStage().WithDetail("stage", stage)
	}

	applicantID := kernel.ApplicantID(gid.Decode(gid.KindApplicant, id))
	entity, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	if err := s.applicantRepo.UpdateStage(ctx, applicantID, parsed); err != nil {
		return nil, err
	}
	entity.Stage = parsed

	jobEntity, err := s.jobRepo.GetByID(ctx, entity.JobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load applicant job", errx.TypeInternal)
	}

	return toResponse(entity, jobEntity), nil
}

// storeUpload writes one upload as "<prefix>-<uuid><ext>" and returns its
// storage path.
func (s *ApplicantService) storeUpload(ctx context.Context, prefix string, up *applicant.Upload) (string, error) {
	name := prefix + "-" + uuid.NewString() + filepath.Ext(up.Filename)
	if err := s.fs.WriteFile(ctx, name, up.Content); err != nil {
		return "", errx.Wrap(err, "failed to store upload", errx.TypeInternal)
	}
	return name, nil
}

func toRowResponse(row *applicant.Row) applicant.RowResponse {
	return applicant.RowResponse{
		ID:        gid.Encode(gid.KindApplicant, row.ID.String()),
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Stage:     row.Stage,
		AppliedAt: row.AppliedAt,
		JobTitle:  row.JobTitle,
	}
}

func toResponse(a *applicant.Applicant, j *job.Job) *applicant.Response {
	return &applicant.Response{
		ID:             gid.Encode(gid.KindApplicant, a.ID.String()),
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		Phone:          a.Phone,
		Stage:          a.Stage,
		CVURL:          a.CVURL,
		CoverLetterURL: a.CoverLetterURL,
		Message:        a.Message,
		AppliedAt:      a.AppliedAt,
		Job: applicant.JobSummary{
			ID:    gid.Encode(gid.KindJob, j.ID.String()),
			Title: j.Title,
		},
	}
}
