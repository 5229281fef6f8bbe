package analyticssrv

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mehrab1899/ats-backend/pkg/errx"
	"github.com/mehrab1899/ats-backend/pkg/iam/auth"
	"github.com/mehrab1899/ats-backend/pkg/logx"
	"github.com/mehrab1899/ats-backend/recruitment/analytics"
	"github.com/mehrab1899/ats-backend/recruitment/applicant"
)

const (
	cacheTTL = 60 * time.Second

	dashboardCacheKey = "analytics:dashboard"
	monthlyCacheKey   = "analytics:monthly"
)

// trendMonths is the trailing window of MonthlyTrends, current month included.
const trendMonths = 6

// AnalyticsService serves the admin dashboard rollups with a read-through
// redis cache in front of the store. A nil cache client disables caching.
type AnalyticsService struct {
	repo  analytics.Repository
	cache *redis.Client
	now   func() time.Time
}

// NewAnalyticsService creates a new instance of the analytics service
func NewAnalyticsService(repo analytics.Repository, cache *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

// DashboardStats returns the headline dashboard rollup. Admin only.
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*analytics.DashboardStats, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}

	var cached analytics.DashboardStats
	if s.fromCache(ctx, dashboardCacheKey, &cached) {
		return &cached, nil
	}

	openJobs, err := s.repo.CountOpenJobs(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count open jobs", errx.TypeInternal)
	}

	totalApplicants, err := s.repo.CountApplicants(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applicants", errx.TypeInternal)
	}

	shortlisted, err := s.repo.CountApplicantsByStage(ctx, applicant.StageShortlisted)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count shortlisted applicants", errx.TypeInternal)
	}

	top, err := s.repo.TopJob(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get top job", errx.TypeInternal)
	}

	stats := &analytics.DashboardStats{
		OpenJobs:        openJobs,
		TotalApplicants: totalApplicants,
		Shortlisted:     shortlisted,
		TopJob:          formatTopJob(top),
	}
	s.toCache(ctx, dashboardCacheKey, stats)
	return stats, nil
}

// MonthlyTrends returns the trailing six calendar months of activity, oldest
// first and the current month last. Admin only.
func (s *AnalyticsService) MonthlyTrends(ctx context.Context) ([]analytics.MonthlyStats, error) {
	if _, err := auth.RequirePrincipal(ctx); err != nil {
		return nil, err
	}

	var cached []analytics.MonthlyStats
	if s.fromCache(ctx, monthlyCacheKey, &cached) {
		return cached, nil
	}

	now := s.now()
	from := monthStart(now).AddDate(0, -(trendMonths - 1), 0)

	jobs, err := s.repo.JobsCreatedByMonth(ctx, from)
	if err != nil {
		return nil, errx.Wrap(err, "failed to aggregate jobs by month", errx.TypeInternal)
	}

	applicants, err := s.repo.ApplicantsByMonth(ctx, from)
	if err != nil {
		return nil, errx.Wrap(err, "failed to aggregate applicants by month", errx.TypeInternal)
	}

	hired, err := s.repo.HiredByApplicationMonth(ctx, from)
	if err != nil {
		return nil, errx.Wrap(err, "failed to aggregate hires by month", errx.TypeInternal)
	}

	stats := buildMonthlyStats(now, jobs, applicants, hired)
	s.toCache(ctx, monthlyCacheKey, stats)
	return stats, nil
}

// formatTopJob renders the dashboard top-job label. No applicants at all
// yields "N/A"; a blank title falls back to "Unknown".
func formatTopJob(top *analytics.TopJob) string {
	if top == nil || top.Applications == 0 {
		return "N/A"
	}
	title := top.Title
	if title == "" {
		title = "Unknown"
	}
	return fmt.Sprintf("%s – %d Applications", title, top.Applications)
}

// buildMonthlyStats lines the store buckets up against the trailing month
// window. Months with no activity appear with zero counts.
func buildMonthlyStats(now time.Time, jobs, applicants, hired []analytics.MonthBucket) []analytics.MonthlyStats {
	jobIdx := indexBuckets(jobs)
	appIdx := indexBuckets(applicants)
	hiredIdx := indexBuckets(hired)

	out := make([]analytics.MonthlyStats, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		m := monthStart(now).AddDate(0, -i, 0)
		key := monthKey(m.Year(), int(m.Month()))
		out = append(out, analytics.MonthlyStats{
			Month:      m.Format("Jan"),
			Jobs:       jobIdx[key],
			Applicants: appIdx[key],
			Hired:      hiredIdx[key],
		})
	}
	return out
}

func indexBuckets(buckets []analytics.MonthBucket) map[int]int {
	idx := make(map[int]int, len(buckets))
	for _, b := range buckets {
		idx[monthKey(b.Year, b.Month)] = b.Count
	}
	return idx
}

func monthKey(year, month int) int {
	return year*100 + month
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (s *AnalyticsService) fromCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logx.Warnf("analytics cache read failed for %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logx.Warnf("analytics cache entry for %s is corrupt: %v", key, err)
		return false
	}
	return true
}

func (s *AnalyticsService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logx.Warnf("failed to marshal analytics cache entry %s: %v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		logx.Warnf("analytics cache write failed for %s: %v", key, err)
	}
}
