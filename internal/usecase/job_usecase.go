package usecase

import (
	"context"
	"errors"

	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

var validJobTypes = map[string]bool{
	domain.JobTypeFullTime:     true,
	domain.JobTypePartTime:     true,
	domain.JobTypeWorkFromHome: true,
}

func (u *jobUsecase) CreateJob(ctx context.Context, recruiterID string, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if !validJobTypes[job.JobType] {
		return apperror.BadRequest("Unknown job type: " + job.JobType)
	}
	if job.MaxApplicants < 1 {
		return apperror.BadRequest("maxApplicants must be at least 1")
	}
	if job.MaxPositions < 1 {
		return apperror.BadRequest("maxPositions must be at least 1")
	}
	if job.MaxPositions > job.MaxApplicants {
		return apperror.BadRequest("maxPositions cannot exceed maxApplicants")
	}
	if job.Salary < 0 {
		return apperror.BadRequest("Salary cannot be negative")
	}
	if job.Duration < 0 {
		return apperror.BadRequest("Duration cannot be negative")
	}
	if job.Deadline.Before(job.DateOfPosting) {
		return apperror.BadRequest("Deadline cannot be before the posting date")
	}

	job.RecruiterID = recruiterID
	job.AcceptedCount = 0
	job.Rating = domain.RatingUnset

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job does not exist")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// SearchJobs validates the typed filter before it reaches the store:
// unknown sort keys and job types are rejected instead of silently
// passed through. The myjobs restriction only applies to recruiters.
func (u *jobUsecase) SearchJobs(ctx context.Context, principal domain.Principal, filter *domain.JobSearchFilter) ([]domain.JobWithRecruiter, error) {
	for _, jt := range filter.JobTypes {
		if !validJobTypes[jt] {
			return nil, apperror.BadRequest("Unknown job type: " + jt)
		}
	}
	for _, key := range filter.Sort {
		if !domain.ValidJobSortField(key.Field) {
			return nil, apperror.BadRequest("Unsupported sort key: " + key.Field)
		}
	}
	if filter.SalaryMin != nil && filter.SalaryMax != nil && *filter.SalaryMin > *filter.SalaryMax {
		return nil, apperror.BadRequest("salaryMin cannot exceed salaryMax")
	}
	if filter.RecruiterID != "" && principal.Role != domain.RoleRecruiter {
		filter.RecruiterID = ""
	}

	jobs, err := u.jobRepo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// UpdateJob changes the only post-creation mutable fields: maxApplicants,
// maxPositions and deadline.
func (u *jobUsecase) UpdateJob(ctx context.Context, recruiterID, jobID string, patch *domain.JobUpdatePatch) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job does not exist")
		}
		return apperror.Internal(err)
	}
	if job.RecruiterID != recruiterID {
		return apperror.NotFound("Job does not exist")
	}

	if patch.MaxApplicants != nil {
		if *patch.MaxApplicants < 1 {
			return apperror.BadRequest("maxApplicants must be at least 1")
		}
		job.MaxApplicants = *patch.MaxApplicants
	}
	if patch.MaxPositions != nil {
		if *patch.MaxPositions < 1 {
			return apperror.BadRequest("maxPositions must be at least 1")
		}
		job.MaxPositions = *patch.MaxPositions
	}
	if patch.Deadline != nil {
		job.Deadline = *patch.Deadline
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job does not exist")
		}
		return apperror.Internal(err)
	}
	return nil
}

// DeleteJob removes a job only for its owner; a non-owner gets an
// authorization error and the job is left unchanged.
func (u *jobUsecase) DeleteJob(ctx context.Context, recruiterID, jobID string) error {
	err := u.jobRepo.DeleteOwned(ctx, jobID, recruiterID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.Unauthorized("You don't have permissions to delete the job")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
