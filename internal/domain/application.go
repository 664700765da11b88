package domain

import (
	"context"
	"errors"
	"time"
)

// Application status constants
const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
	StatusCancelled   = "cancelled"
	StatusFinished    = "finished"
	StatusDeleted     = "deleted"
)

// NonTerminalStatuses are the statuses still progressing through the
// workflow. They are what capacity limits count against.
var NonTerminalStatuses = []string{StatusApplied, StatusShortlisted, StatusAccepted}

// IsTerminal reports whether a status can no longer transition.
func IsTerminal(status string) bool {
	switch status {
	case StatusRejected, StatusCancelled, StatusFinished, StatusDeleted:
		return true
	}
	return false
}

type transition struct {
	from, to, role string
}

// transitions is the single authority for status changes: every allowed
// (current, requested, actor role) triple appears here, and both the
// recruiter and cancel code paths consult it.
var transitions = map[transition]bool{
	{StatusApplied, StatusShortlisted, RoleRecruiter}:  true,
	{StatusApplied, StatusRejected, RoleRecruiter}:     true,
	{StatusShortlisted, StatusAccepted, RoleRecruiter}: true,
	{StatusShortlisted, StatusRejected, RoleRecruiter}: true,
	{StatusAccepted, StatusFinished, RoleRecruiter}:    true,

	{StatusApplied, StatusCancelled, RoleApplicant}:     true,
	{StatusShortlisted, StatusCancelled, RoleApplicant}: true,
}

// CanTransition reports whether role may move an application from one
// status to another.
func CanTransition(from, to, role string) bool {
	return transitions[transition{from, to, role}]
}

// ErrPositionsFilled is returned by the accept path when the job's
// accepted count has already reached maxPositions.
var ErrPositionsFilled = errors.New("all positions filled")

// ErrStatusConflict is returned by the accept path when the stored
// status no longer matches the one the caller validated against.
var ErrStatusConflict = errors.New("application status changed")

// Application links an applicant to a job. RecruiterID is denormalized
// from the job at creation so recruiter-side queries need no join.
type Application struct {
	ID                string     `json:"id"`
	JobID             string     `json:"jobId"`
	ApplicantID       string     `json:"userId"`
	RecruiterID       string     `json:"recruiterId"`
	Status            string     `json:"status"`
	SOP               string     `json:"sop"`
	DateOfApplication time.Time  `json:"dateOfApplication"`
	DateOfJoining     *time.Time `json:"dateOfJoining,omitempty"`

	// Joined data for list responses
	Job       *Job              `json:"job,omitempty"`
	Applicant *ApplicantProfile `json:"jobApplicant,omitempty"`
	Recruiter *RecruiterProfile `json:"recruiter,omitempty"`
}

// ApplicantListFilter narrows the recruiter's applicant listing.
type ApplicantListFilter struct {
	JobID    string
	Statuses []string
	Sort     []SortKey
}

// applicantSortFields is the whitelist for the applicant listing.
var applicantSortFields = map[string]bool{
	"name":              true,
	"jobTitle":          true,
	"dateOfApplication": true,
	"dateOfJoining":     true,
	"rating":            true,
}

// ValidApplicantSortField reports whether a sort key is supported.
func ValidApplicantSortField(field string) bool {
	return applicantSortFields[field]
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)

	// HasNonTerminal reports an existing applied/shortlisted/accepted
	// application for the (applicant, job) pair.
	HasNonTerminal(ctx context.Context, applicantID, jobID string) (bool, error)
	CountActiveForJob(ctx context.Context, jobID string) (int, error)
	CountActiveForApplicant(ctx context.Context, applicantID string) (int, error)
	CountAcceptedForApplicant(ctx context.Context, applicantID string) (int, error)

	ListForApplicant(ctx context.Context, applicantID string) ([]Application, error)
	ListForRecruiter(ctx context.Context, recruiterID string) ([]Application, error)
	ListForJob(ctx context.Context, jobID, recruiterID, status string) ([]Application, error)
	ListApplicants(ctx context.Context, recruiterID string, filter *ApplicantListFilter) ([]Application, error)

	UpdateStatus(ctx context.Context, id, status string) error

	// Accept runs the accept path as one transaction: lock the job,
	// recount accepted applications, refuse with ErrPositionsFilled at
	// capacity, set the status and joining date, cancel the applicant's
	// other non-terminal applications, and refresh the job's counter.
	Accept(ctx context.Context, app *Application, dateOfJoining time.Time) error
}

// StatusUpdate is the transition request body.
type StatusUpdate struct {
	Status        string     `json:"status" binding:"required"`
	DateOfJoining *time.Time `json:"dateOfJoining"`
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID, jobID, sop string) error
	UpdateStatus(ctx context.Context, principal Principal, applicationID string, upd *StatusUpdate) (string, error)
	ListOwn(ctx context.Context, principal Principal) ([]Application, error)
	ListForJob(ctx context.Context, recruiterID, jobID, status string) ([]Application, error)
	ListApplicants(ctx context.Context, recruiterID string, filter *ApplicantListFilter) ([]Application, error)
	ExportApplicants(ctx context.Context, recruiterID string, filter *ApplicantListFilter, format string) ([]byte, string, error)
}
