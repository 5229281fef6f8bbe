package jobsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mehrab1899/ats-backend/pkg/errx"
	"github.com/mehrab1899/ats-backend/pkg/gid"
	"github.com/mehrab1899/ats-backend/pkg/iam/auth"
	"github.com/mehrab1899/ats-backend/pkg/kernel"
	"github.com/mehrab1899/ats-backend/recruitment/job"
)

// JobService provides the public catalog and the admin job management surface
type JobService struct {
	jobRepo job.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// ListPublicJobs returns one cursor page of OPEN jobs, newest first. No
// authentication required.
func (s *JobService) ListPublicJobs(ctx context.Context, args kernel.CursorArgs) (*job.PublicConnection, error) {
	window, err := args.Window()
	if err != nil {
		return nil, err
	}

	rows, err := s.jobRepo.ListOpen(ctx, window)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list open jobs", errx.TypeInternal)
	}

	total, err := s.jobRepo.CountOpen(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count open jobs", errx.TypeInternal)
	}

	cursors := make(map[string]kernel.Cursor, len(rows))
	responses := make([]job.Response, 0, len(rows))
	for _, j := range rows {
		resp := toJobResponse(&j)
		cursors[resp.ID] = kernel.Cursor{At: j.CreatedAt, ID: j.ID.String()}
		responses = append(responses, resp)
	}

	return kernel.BuildConnection(responses, window, total, func(r job.Response) kernel.Cursor {
		return cursors[r.ID]
	}), nil
}

// ListJobs returns the admin job list with per-row application counts
func (s *JobService) ListJobs(ctx context.Context, search, status string, pagination kernel.PaginationOptions) (*job.AdminListResponse, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}

	filter := job.BuildSearchFilter(search, status)
	paginated, err := s.jobRepo.List(ctx, filter, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	rows := make([]job.AdminRowResponse, 0, len(paginated.Items))
	for _, row := range paginated.Items {
		rows = append(rows, job.AdminRowResponse{
			ID:             gid.Encode(gid.KindJob, row.ID.String()),
			Title:          row.Title,
			Status:         row.Status,
			Type:           row.Type,
			ApplicantCount: row.ApplicantCount,
			CreatedAt:      row.CreatedAt,
		})
	}

	return &job.AdminListResponse{
		Rows:       rows,
		TotalCount: paginated.Page.Total,
	}, nil
}

// GetJobByID retrieves a job by its global id
func (s *JobService) GetJobByID(ctx context.Context, id string) (*job.Response, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}

	jobID := kernel.NewJobID(gid.Decode(gid.KindJob, id))
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	resp := toJobResponse(jobEntity)
	return &resp, nil
}

// CreateJob creates a new job posting. Status defaults to OPEN and type to
// FULL_TIME when omitted.
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Response, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}

	if req.Title == "" || req.Description == "" {
		return nil, job.ErrMissingFields()
	}

	status := job.StatusOpen
	if req.Status != nil {
		parsed, ok := job.ParseStatus(*req.Status)
		if !ok {
			return nil, job.ErrInvalidStatus().WithDetail("status", *req.Status)
		}
		status = parsed
	}

	jobType := job.TypeFullTime
	if req.Type != nil {
		parsed, ok := job.ParseType(*req.Type)
		if !ok {
			return nil, job.ErrInvalidType().WithDetail("job_type", *req.Type)
		}
		jobType = parsed
	}

	now := time.Now()
	newJob := &job.Job{
		ID:             kernel.NewJobID(uuid.NewString()),
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		Type:           jobType,
		SkillsRequired: req.SkillsRequired,
		Benefits:       req.Benefits,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	resp := toJobResponse(newJob)
	return &resp, nil
}

// UpdateJob applies a field-wise partial update to an existing job
func (s *JobService) UpdateJob(ctx context.Context, id string, req job.UpdateJobRequest) (*job.Response, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}

	jobID := kernel.NewJobID(gid.Decode(gid.KindJob, id))
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		jobEntity.Title = *req.Title
	}
	if req.Description != nil {
		jobEntity.Description = *req.Description
	}
	if req.Status != nil {
		parsed, ok := job.ParseStatus(*req.Status)
		if !ok {
			return nil, job.ErrInvalidStatus().WithDetail("status", *req.Status)
		}
		jobEntity.Status = parsed
	}
	if req.Type != nil {
		parsed, ok := job.ParseType(*req.Type)
		if !ok {
			return nil, job.ErrInvalidType().WithDetail("job_type", *req.Type)
		}
		jobEntity.Type = parsed
	}
	if req.SkillsRequired != nil {
		jobEntity.SkillsRequired = *req.SkillsRequired
	}
	if req.Benefits != nil {
		jobEntity.Benefits = *req.Benefits
	}
	jobEntity.UpdatedAt = time.Now()

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}

	resp := toJobResponse(jobEntity)
	return &resp, nil
}

// UpdateJobStatus moves a job to a new status
func (s *JobService) UpdateJobStatus(ctx context.Context, id string, status string) (*job.Response, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}

	parsed, ok := job.ParseStatus(status)
	if !ok {
		return nil, job.ErrInvalidStatus().WithDetail("status", status)
	}

	jobID := kernel.NewJobID(gid.Decode(gid.KindJob, id))
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.UpdateStatus(ctx, jobID, parsed); err != nil {
		return nil, err
	}

	jobEntity.Status = parsed
	jobEntity.UpdatedAt = time.Now()
	resp := toJobResponse(jobEntity)
	return &resp, nil
}

// toJobResponse converts a Job entity to its response DTO
func toJobResponse(j *job.Job) job.Response {
	return job.Response{
		ID:             gid.Encode(gid.KindJob, j.ID.String()),
		Title:          j.Title,
		Description:    j.Description,
		Status:         j.Status,
		Type:           j.Type,
		SkillsRequired: j.SkillsRequired,
		Benefits:       j.Benefits,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}
