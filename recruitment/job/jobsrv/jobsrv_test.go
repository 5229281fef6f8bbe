package jobsrv

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehrab1899/ats-backend/pkg/errx"
	"github.com/mehrab1899/ats-backend/pkg/iam/auth"
	"github.com/mehrab1899/ats-backend/pkg/kernel"
	"github.com/mehrab1899/ats-backend/pkg/predx"
	"github.com/mehrab1899/ats-backend/recruitment/job"
)

type fakeJobRepo struct {
	jobs      map[kernel.JobID]*job.Job
	counts    map[kernel.JobID]int
	listCalls []predx.Predicate
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:   make(map[kernel.JobID]*job.Job),
		counts: make(map[kernel.JobID]int),
	}
}

func (r *fakeJobRepo) Create(_ context.Context, j *job.Job) error {
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, id kernel.JobID, j *job.Job) error {
	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	cp := *j
	r.jobs[id] = &cp
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) Exists(_ context.Context, id kernel.JobID) (bool, error) {
	_, ok := r.jobs[id]
	return ok, nil
}

func (r *fakeJobRepo) ListOpen(_ context.Context, window kernel.CursorWindow) ([]job.Job, error) {
	open := make([]job.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if j.IsOpen() {
			open = append(open, *j)
		}
	}
	sort.Slice(open, func(i, k int) bool {
		a, b := open[i], open[k]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	if window.Boundary != nil {
		kept := open[:0]
		for _, j := range open {
			older := j.CreatedAt.Before(window.Boundary.At) ||
				(j.CreatedAt.Equal(window.Boundary.At) && j.ID.String() < window.Boundary.ID)
			if older == !window.Backward {
				kept = append(kept, j)
			}
		}
		open = kept
	}
	if window.Backward {
		for i, k := 0, len(open)-1; i < k; i, k = i+1, k-1 {
			open[i], open[k] = open[k], open[i]
		}
	}
	if len(open) > window.Limit {
		open = open[:window.Limit]
	}
	return open, nil
}

func (r *fakeJobRepo) CountOpen(context.Context) (int, error) {
	n := 0
	for _, j := range r.jobs {
		if j.IsOpen() {
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepo) List(_ context.Context, filter predx.Predicate, pagination kernel.PaginationOptions) (*kernel.Paginated[job.AdminRow], error) {
	r.listCalls = append(r.listCalls, filter)

	rows := make([]job.AdminRow, 0, len(r.jobs))
	for _, j := range r.jobs {
		rows = append(rows, job.AdminRow{Job: *j, ApplicantCount: r.counts[j.ID]})
	}
	sort.Slice(rows, func(i, k int) bool {
		return rows[i].CreatedAt.After(rows[k].CreatedAt)
	})
	return kernel.NewPaginated(rows, pagination, len(rows)), nil
}

func (r *fakeJobRepo) UpdateStatus(_ context.Context, id kernel.JobID, status job.Status) error {
	j, ok := r.jobs[id]
	if !ok {
		return job.ErrJobNotFound()
	}
	j.Status = status
	return nil
}

func adminCtx() context.Context {
	return auth.WithPrincipal(context.Background(), &auth.Principal{
		AdminID: kernel.NewAdminID(uuid.NewString()),
	})
}

func seedJob(repo *fakeJobRepo, title string, status job.Status, createdAt time.Time) *job.Job {
	j := &job.Job{
		ID:        kernel.NewJobID(uuid.NewString()),
		Title:     kernel.JobTitle(title),
		Status:    status,
		Type:      job.TypeFullTime,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	repo.jobs[j.ID] = j
	return j
}

func TestCreateJobDefaults(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)

	resp, err := svc.CreateJob(adminCtx(), job.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Go services",
	})
	require.NoError(t, err)

	assert.Equal(t, job.StatusOpen, resp.Status)
	assert.Equal(t, job.TypeFullTime, resp.Type)
	assert.True(t, strings.HasPrefix(resp.ID, "job-"))
}

func TestCreateJobValidation(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())

	_, err := svc.CreateJob(adminCtx(), job.CreateJobRequest{Title: "x"})
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	bad := "ARCHIVED"
	_, err = svc.CreateJob(adminCtx(), job.CreateJobRequest{
		Title: "x", Description: "y", Status: &bad,
	})
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	_, err = svc.CreateJob(context.Background(), job.CreateJobRequest{Title: "x", Description: "y"})
	assert.True(t, errx.IsType(err, errx.TypeAuthentication))
}

func TestUpdateJobPartial(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)
	j := seedJob(repo, "Old Title", job.StatusDraft, time.Now())

	newTitle := kernel.JobTitle("New Title")
	resp, err := svc.UpdateJob(adminCtx(), "job-"+j.ID.String(), job.UpdateJobRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, newTitle, resp.Title)
	assert.Equal(t, job.StatusDraft, resp.Status, "unspecified fields stay put")

	_, err = svc.UpdateJob(adminCtx(), "job-"+uuid.NewString(), job.UpdateJobRequest{Title: &newTitle})
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
}

func TestUpdateJobStatus(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)
	j := seedJob(repo, "Backend Engineer", job.StatusOpen, time.Now())

	resp, err := svc.UpdateJobStatus(adminCtx(), "job-"+j.ID.String(), "closed")
	require.NoError(t, err)
	assert.Equal(t, job.StatusClosed, resp.Status)
	assert.Equal(t, job.StatusClosed, repo.jobs[j.ID].Status)

	_, err = svc.UpdateJobStatus(adminCtx(), "job-"+j.ID.String(), "REOPENED")
	assert.True(t, errx.IsType(err, errx.TypeValidation))
}

func TestListPublicJobsOnlyOpenNewestFirst(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	older := seedJob(repo, "Older", job.StatusOpen, base)
	newer := seedJob(repo, "Newer", job.StatusOpen, base.AddDate(0, 0, 1))
	seedJob(repo, "Hidden", job.StatusDraft, base.AddDate(0, 0, 2))
	seedJob(repo, "Closed", job.StatusClosed, base.AddDate(0, 0, 3))

	conn, err := svc.ListPublicJobs(context.Background(), kernel.CursorArgs{})
	require.NoError(t, err)

	assert.Equal(t, 2, conn.TotalCount)
	require.Len(t, conn.Edges, 2)
	assert.Equal(t, "job-"+newer.ID.String(), conn.Edges[0].Node.ID)
	assert.Equal(t, "job-"+older.ID.String(), conn.Edges[1].Node.ID)
	assert.False(t, conn.PageInfo.HasNextPage)
}

func TestListPublicJobsCursorWalk(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		seedJob(repo, "Job", job.StatusOpen, base.AddDate(0, 0, i))
	}

	one := 1
	seen := map[string]bool{}
	args := kernel.CursorArgs{First: &one}
	for i := 0; i < 3; i++ {
		conn, err := svc.ListPublicJobs(context.Background(), args)
		require.NoError(t, err)
		require.Len(t, conn.Edges, 1)
		id := conn.Edges[0].Node.ID
		assert.False(t, seen[id], "no overlap between pages")
		seen[id] = true
		assert.Equal(t, i < 2, conn.PageInfo.HasNextPage)
		args = kernel.CursorArgs{First: &one, After: conn.PageInfo.EndCursor}
	}
}

func TestListJobsAdmin(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)
	j := seedJob(repo, "Backend Engineer", job.StatusOpen, time.Now())
	repo.counts[j.ID] = 4

	_, err := svc.ListJobs(context.Background(), "", "", kernel.PaginationOptions{})
	assert.True(t, errx.IsType(err, errx.TypeAuthentication))

	resp, err := svc.ListJobs(adminCtx(), "engineer", "open", kernel.PaginationOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalCount)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 4, resp.Rows[0].ApplicantCount)

	require.Len(t, repo.listCalls, 1)
	assert.Equal(t, job.BuildSearchFilter("engineer", "open"), repo.listCalls[0])
}
