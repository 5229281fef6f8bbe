package analytics

// DashboardStats is the headline rollup of the admin dashboard.
type DashboardStats struct {
	OpenJobs        int    `json:"open_jobs"`
	TotalApplicants int    `json:"total_applicants"`
	Shortlisted     int    `json:"shortlisted"`
	TopJob          string `json:"top_job"`
}

// MonthlyStats is one month of the trailing activity trend.
type MonthlyStats struct {
	Month      string `json:"month"`
	Jobs       int    `json:"jobs"`
	Applicants int    `json:"applicants"`
	Hired      int    `json:"hired"`
}

// TopJob is the job with the most applications.
type TopJob struct {
	Title        string `json:"title"`
	Applications int    `json:"applications"`
}

// MonthBucket is a per-calendar-month count as aggregated by the store.
type MonthBucket struct {
	Year  int `db:"year"`
	Month int `db:"month"`
	Count int `db:"count"`
}
