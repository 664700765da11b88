package domain

import (
	"context"
	"time"
)

// Job types
const (
	JobTypeFullTime     = "full-time"
	JobTypePartTime     = "part-time"
	JobTypeWorkFromHome = "work-from-home"
)

// Job is owned by its recruiter. AcceptedCount is mutated only through
// the application workflow's accept path.
type Job struct {
	ID            string    `json:"id"`
	RecruiterID   string    `json:"recruiterId"`
	Title         string    `json:"title"`
	MaxApplicants int       `json:"maxApplicants"`
	MaxPositions  int       `json:"maxPositions"`
	AcceptedCount int       `json:"acceptedCandidates"`
	DateOfPosting time.Time `json:"dateOfPosting"`
	Deadline      time.Time `json:"deadline"`
	Skillsets     []string  `json:"skillsets"`
	JobType       string    `json:"jobType"`
	Duration      int       `json:"duration"` // months, 0 = flexible
	Salary        int64     `json:"salary"`
	Rating        float64   `json:"rating"`
}

// JobWithRecruiter joins a job to its owning recruiter's profile.
// Listings use inner-join semantics: jobs without a recruiter profile are
// not returned.
type JobWithRecruiter struct {
	Job
	Recruiter RecruiterProfile `json:"recruiter"`
}

// SortKey is one user-supplied ordering criterion.
type SortKey struct {
	Field string
	Desc  bool
}

// JobSearchFilter is the typed form of the search query string. Sort
// keys are checked against the whitelist before the filter reaches the
// store, so unknown keys fail up front instead of leaking into SQL.
type JobSearchFilter struct {
	Query       string
	JobTypes    []string
	SalaryMin   *int64
	SalaryMax   *int64
	MaxDuration *int
	// RecruiterID restricts results to one recruiter's jobs (myjobs flag).
	RecruiterID string
	Sort        []SortKey
}

// jobSortFields is the whitelist of sortable job attributes.
var jobSortFields = map[string]bool{
	"salary":        true,
	"duration":      true,
	"rating":        true,
	"title":         true,
	"deadline":      true,
	"dateOfPosting": true,
	"maxApplicants": true,
	"maxPositions":  true,
}

// ValidJobSortField reports whether a sort key is supported.
func ValidJobSortField(field string) bool {
	return jobSortFields[field]
}

// JobUpdatePatch carries the only job fields a recruiter may change after
// posting; nil fields are untouched.
type JobUpdatePatch struct {
	MaxApplicants *int       `json:"maxApplicants"`
	MaxPositions  *int       `json:"maxPositions"`
	Deadline      *time.Time `json:"deadline"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Search(ctx context.Context, filter *JobSearchFilter) ([]JobWithRecruiter, error)
	Update(ctx context.Context, job *Job) error
	// DeleteOwned removes the job only when recruiterID owns it;
	// ErrNotFound otherwise, leaving the row untouched.
	DeleteOwned(ctx context.Context, id, recruiterID string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, recruiterID string, job *Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
	SearchJobs(ctx context.Context, principal Principal, filter *JobSearchFilter) ([]JobWithRecruiter, error)
	UpdateJob(ctx context.Context, recruiterID, jobID string, patch *JobUpdatePatch) error
	DeleteJob(ctx context.Context, recruiterID, jobID string) error
}
