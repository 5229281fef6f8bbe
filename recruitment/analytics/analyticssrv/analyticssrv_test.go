package analyticssrv

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehrab1899/ats-backend/pkg/errx"
	"github.com/mehrab1899/ats-backend/pkg/iam/auth"
	"github.com/mehrab1899/ats-backend/pkg/kernel"
	"github.com/mehrab1899/ats-backend/recruitment/analytics"
	"github.com/mehrab1899/ats-backend/recruitment/applicant"
)

type fakeAnalyticsRepo struct {
	openJobs    int
	applicants  int
	shortlisted int
	topJob      *analytics.TopJob

	jobBuckets   []analytics.MonthBucket
	appBuckets   []analytics.MonthBucket
	hiredBuckets []analytics.MonthBucket

	lastFrom time.Time
}

func (r *fakeAnalyticsRepo) CountOpenJobs(context.Context) (int, error)   { return r.openJobs, nil }
func (r *fakeAnalyticsRepo) CountApplicants(context.Context) (int, error) { return r.applicants, nil }

func (r *fakeAnalyticsRepo) CountApplicantsByStage(_ context.Context, stage applicant.Stage) (int, error) {
	if stage == applicant.StageShortlisted {
		return r.shortlisted, nil
	}
	return 0, nil
}

func (r *fakeAnalyticsRepo) TopJob(context.Context) (*analytics.TopJob, error) {
	return r.topJob, nil
}

func (r *fakeAnalyticsRepo) JobsCreatedByMonth(_ context.Context, from time.Time) ([]analytics.MonthBucket, error) {
	r.lastFrom = from
	return r.jobBuckets, nil
}

func (r *fakeAnalyticsRepo) ApplicantsByMonth(_ context.Context, from time.Time) ([]analytics.MonthBucket, error) {
	return r.appBuckets, nil
}

func (r *fakeAnalyticsRepo) HiredByApplicationMonth(_ context.Context, from time.Time) ([]analytics.MonthBucket, error) {
	return r.hiredBuckets, nil
}

func adminCtx() context.Context {
	return auth.WithPrincipal(context.Background(), &auth.Principal{
		AdminID: kernel.NewAdminID(uuid.NewString()),
	})
}

func TestDashboardStatsRequiresAdmin(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, nil)

	_, err := svc.DashboardStats(context.Background())
	assert.True(t, errx.IsType(err, errx.TypeAuthentication))

	_, err = svc.MonthlyTrends(context.Background())
	assert.True(t, errx.IsType(err, errx.TypeAuthentication))
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		openJobs:    3,
		applicants:  12,
		shortlisted: 4,
		topJob:      &analytics.TopJob{Title: "Backend Engineer", Applications: 7},
	}
	svc := NewAnalyticsService(repo, nil)

	stats, err := svc.DashboardStats(adminCtx())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.OpenJobs)
	assert.Equal(t, 12, stats.TotalApplicants)
	assert.Equal(t, 4, stats.Shortlisted)
	assert.Equal(t, "Backend Engineer – 7 Applications", stats.TopJob)
}

func TestDashboardStatsTopJobFallbacks(t *testing.T) {
	t.Run("no applicants at all", func(t *testing.T) {
		svc := NewAnalyticsService(&fakeAnalyticsRepo{topJob: nil}, nil)
		stats, err := svc.DashboardStats(adminCtx())
		require.NoError(t, err)
		assert.Equal(t, "N/A", stats.TopJob)
	})

	t.Run("blank title", func(t *testing.T) {
		repo := &fakeAnalyticsRepo{topJob: &analytics.TopJob{Title: "", Applications: 2}}
		svc := NewAnalyticsService(repo, nil)
		stats, err := svc.DashboardStats(adminCtx())
		require.NoError(t, err)
		assert.Equal(t, "Unknown – 2 Applications", stats.TopJob)
	})
}

func TestMonthlyTrendsWindow(t *testing.T) {
	// mid-June: window must be Jan..Jun
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	repo := &fakeAnalyticsRepo{
		jobBuckets: []analytics.MonthBucket{
			{Year: 2026, Month: 1, Count: 2},
			{Year: 2026, Month: 6, Count: 1},
		},
		appBuckets: []analytics.MonthBucket{
			{Year: 2026, Month: 3, Count: 5},
		},
		hiredBuckets: []analytics.MonthBucket{
			{Year: 2026, Month: 3, Count: 1},
		},
	}
	svc := NewAnalyticsService(repo, nil)
	svc.now = func() time.Time { return now }

	trends, err := svc.MonthlyTrends(adminCtx())
	require.NoError(t, err)

	require.Len(t, trends, 6)
	labels := make([]string, 0, 6)
	for _, m := range trends {
		labels = append(labels, m.Month)
	}
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, labels)

	assert.Equal(t, 2, trends[0].Jobs)
	assert.Equal(t, 1, trends[5].Jobs)
	assert.Equal(t, 5, trends[2].Applicants)
	assert.Equal(t, 1, trends[2].Hired)
	assert.Equal(t, analytics.MonthlyStats{Month: "Feb"}, trends[1], "idle months carry zero counts")

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), repo.lastFrom)
}

func TestMonthlyTrendsWindowAcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)

	repo := &fakeAnalyticsRepo{
		appBuckets: []analytics.MonthBucket{
			{Year: 2025, Month: 12, Count: 4},
			{Year: 2026, Month: 2, Count: 2},
		},
	}
	svc := NewAnalyticsService(repo, nil)
	svc.now = func() time.Time { return now }

	trends, err := svc.MonthlyTrends(adminCtx())
	require.NoError(t, err)

	require.Len(t, trends, 6)
	assert.Equal(t, "Sep", trends[0].Month)
	assert.Equal(t, "Dec", trends[3].Month)
	assert.Equal(t, 4, trends[3].Applicants)
	assert.Equal(t, "Feb", trends[5].Month)
	assert.Equal(t, 2, trends[5].Applicants)
}
