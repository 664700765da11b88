package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Search(ctx context.Context, filter *domain.JobSearchFilter) ([]domain.JobWithRecruiter, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithRecruiter), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) DeleteOwned(ctx context.Context, id, recruiterID string) error {
	return m.Called(ctx, id, recruiterID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) HasNonTerminal(ctx context.Context, applicantID, jobID string) (bool, error) {
	args := m.Called(ctx, applicantID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) CountActiveForJob(ctx context.Context, jobID string) (int, error) {
	args := m.Called(ctx, jobID)
	return args.Int(0), args.Error(1)
}

func (m *MockApplicationRepo) CountActiveForApplicant(ctx context.Context, applicantID string) (int, error) {
	args := m.Called(ctx, applicantID)
	return args.Int(0), args.Error(1)
}

func (m *MockApplicationRepo) CountAcceptedForApplicant(ctx context.Context, applicantID string) (int, error) {
	args := m.Called(ctx, applicantID)
	return args.Int(0), args.Error(1)
}

func (m *MockApplicationRepo) ListForApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListForRecruiter(ctx context.Context, recruiterID string) ([]domain.Application, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListForJob(ctx context.Context, jobID, recruiterID, status string) ([]domain.Application, error) {
	args := m.Called(ctx, jobID, recruiterID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListApplicants(ctx context.Context, recruiterID string, filter *domain.ApplicantListFilter) ([]domain.Application, error) {
	args := m.Called(ctx, recruiterID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockApplicationRepo) Accept(ctx context.Context, app *domain.Application, dateOfJoining time.Time) error {
	return m.Called(ctx, app, dateOfJoining).Error(0)
}

type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) GetScore(ctx context.Context, senderID, receiverID, category string) (float64, error) {
	args := m.Called(ctx, senderID, receiverID, category)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingRepo) HasWorkRelation(ctx context.Context, category, senderID, receiverID string) (bool, error) {
	args := m.Called(ctx, category, senderID, receiverID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepo) Upsert(ctx context.Context, rating *domain.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func openJob(recruiterID string) *domain.Job {
	return &domain.Job{
		ID:            "job1",
		RecruiterID:   recruiterID,
		Title:         "Backend Engineer",
		MaxApplicants: 30,
		MaxPositions:  2,
		DateOfPosting: time.Now(),
		Deadline:      time.Now().Add(30 * 24 * time.Hour),
		JobType:       domain.JobTypeFullTime,
		Salary:        90000,
	}
}

func TestApplySubmissionGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a duplicate active application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, 10)

		appRepo.On("HasNonTerminal", ctx, "applicant1", "job1").Return(true, nil)

		err := uc.Apply(ctx, "applicant1", "job1", "I want this job")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You have already applied for this job")
		jobRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Should 404 when the job does not exist", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, 10)

		appRepo.On("HasNonTerminal", ctx, "applicant1", "missing").Return(false, nil)
		jobRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

		err := uc.Apply(ctx, "applicant1", "missing", "sop")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job does not exist")
	})

	t.Run("Should reject when the job hit maxApplicants", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, 10)

		appRepo.On("HasNonTerminal", ctx, "applicant1", "job1").Return(false, nil)
		jobRepo.On("GetByID", ctx, "job1").Return(openJob("recruiter1"), nil)
		appRepo.On("CountActiveForJob", ctx, "job1").Return(30, nil)

		err := uc.Apply(ctx, "applicant1", "job1", "sop")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Application limit reached")
	})

	t.Run("Should reject when the applicant hit the active-application cap", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, 10)

		appRepo.On("HasNonTerminal", ctx, "applicant1", "job1").Return(false, nil)
		jobRepo.On("GetByID", ctx, "job1").Return(openJob("recruiter1"), nil)
		appRepo.On("CountActiveForJob", ctx, "job1").Return(3, nil)
		appRepo.On("CountActiveForApplicant", ctx, "applicant1").Return(10, nil)

		err := uc.Apply(ctx, "applicant1", "job1", "sop")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You have 10 active applications. Hence you cannot apply.")
	})

	t.Run("Should reject when the applicant already holds an accepted job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, 10)

		appRepo.On("HasNonTerminal", ctx, "applicant1", "job1").Return(false, nil)
		jobRepo.On("GetByID", ctx, "job1").Return(openJob("recruiter1"), nil)
		appRepo.On("CountActiveForJob", ctx, "job1").Return(3, nil)
		appRepo.On("CountActiveForApplicant", ctx, "applicant1").Return(2, nil)
		appRepo.On("CountAcceptedForApplicant", ctx, "applicant1").Return(1, nil)

		err := uc.Apply(ctx, "applicant1", "job1", "sop")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You already have an accepted job. Hence you cannot apply.")
	})

	t.Run("Should create an applied application with the job's recruiter", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, 10)

		appRepo.On("HasNonTerminal", ctx, "applicant1", "job1").Return(false, nil)
		jobRepo.On("GetByID", ctx, "job1").Return(openJob("recruiter1"), nil)
		appRepo.On("CountActiveForJob", ctx, "job1").Return(3, nil)
		appRepo.On("CountActiveForApplicant", ctx, "applicant1").Return(2, nil)
		appRepo.On("CountAcceptedForApplicant", ctx, "applicant1").Return(0, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			a := args.Get(1).(*domain.Application)
			assert.Equal(t, domain.StatusApplied, a.Status)
			assert.Equal(t, "recruiter1", a.RecruiterID)
			assert.Equal(t, "applicant1", a.ApplicantID)
		})

		err := uc.Apply(ctx, "applicant1", "job1", "sop")
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()
	recruiter := domain.Principal{UserID: "recruiter1", Role: domain.RoleRecruiter}
	applicant := domain.Principal{UserID: "applicant1", Role: domain.RoleApplicant}

	newApp := func(status string) *domain.Application {
		return &domain.Application{
			ID: "app1", JobID: "job1",
			ApplicantID: "applicant1", RecruiterID: "recruiter1",
			Status: status,
		}
	}

	t.Run("Recruiter shortlists an applied application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("GetByID", ctx, "app1").Return(newApp(domain.StatusApplied), nil)
		appRepo.On("UpdateStatus", ctx, "app1", domain.StatusShortlisted).Return(nil)

		msg, err := uc.UpdateStatus(ctx, recruiter, "app1", &domain.StatusUpdate{Status: domain.StatusShortlisted})
		assert.NoError(t, err)
		assert.Equal(t, "Application shortlisted successfully", msg)
	})

	t.Run("Accept goes through the transactional path", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("GetByID", ctx, "app1").Return(newApp(domain.StatusShortlisted), nil)
		appRepo.On("Accept", ctx, mock.AnythingOfType("*domain.Application"), mock.AnythingOfType("time.Time")).Return(nil)

		msg, err := uc.UpdateStatus(ctx, recruiter, "app1", &domain.StatusUpdate{Status: domain.StatusAccepted})
		assert.NoError(t, err)
		assert.Equal(t, "Application accepted successfully", msg)
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Accept at capacity reports filled positions", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("GetByID", ctx, "app1").Return(newApp(domain.StatusShortlisted), nil)
		appRepo.On("Accept", ctx, mock.AnythingOfType("*domain.Application"), mock.AnythingOfType("time.Time")).Return(domain.ErrPositionsFilled)

		_, err := uc.UpdateStatus(ctx, recruiter, "app1", &domain.StatusUpdate{Status: domain.StatusAccepted})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "All positions for this job are already filled")
	})

	t.Run("Accept losing the status race reports the conflict", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("GetByID", ctx, "app1").Return(newApp(domain.StatusShortlisted), nil)
		appRepo.On("Accept", ctx, mock.AnythingOfType("*domain.Application"), mock.AnythingOfType("time.Time")).Return(domain.ErrStatusConflict)

		_, err := uc.UpdateStatus(ctx, recruiter, "app1", &domain.StatusUpdate{Status: domain.StatusAccepted})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Application status has changed")
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Recruiter cannot accept straight from applied", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("GetByID", ctx, "app1").Return(newApp(domain.StatusApplied), nil)

		_, err := uc.UpdateStatus(ctx, recruiter, "app1", &domain.StatusUpdate{Status: domain.StatusAccepted})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot move application from applied to accepted")
	})

	t.Run("Terminal statuses refuse further transitions", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("GetByID", ctx, "app1").Return(newApp(domain.StatusRejected), nil)

		_, err := uc.UpdateStatus(ctx, recruiter, "app1", &domain.StatusUpdate{Status: domain.StatusShortlisted})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already rejected")
	})

	t.Run("Applicant may cancel but not accept", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("GetByID", ctx, "app1").Return(newApp(domain.StatusShortlisted), nil)
		appRepo.On("UpdateStatus", ctx, "app1", domain.StatusCancelled).Return(nil)

		msg, err := uc.UpdateStatus(ctx, applicant, "app1", &domain.StatusUpdate{Status: domain.StatusCancelled})
		assert.NoError(t, err)
		assert.Equal(t, "Application cancelled successfully", msg)

		appRepo.On("GetByID", ctx, "app2").Return(&domain.Application{
			ID: "app2", ApplicantID: "applicant1", RecruiterID: "recruiter1",
			Status: domain.StatusShortlisted,
		}, nil)
		_, err = uc.UpdateStatus(ctx, applicant, "app2", &domain.StatusUpdate{Status: domain.StatusAccepted})
		assert.Error(t, err)
	})

	t.Run("Other recruiter's application reads as missing", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("GetByID", ctx, "app1").Return(newApp(domain.StatusApplied), nil)

		other := domain.Principal{UserID: "recruiter2", Role: domain.RoleRecruiter}
		_, err := uc.UpdateStatus(ctx, other, "app1", &domain.StatusUpdate{Status: domain.StatusShortlisted})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Application not found")
	})
}

func TestListApplicants(t *testing.T) {
	ctx := context.Background()

	t.Run("Should 404 when no applicants match", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("ListApplicants", ctx, "recruiter1", mock.Anything).Return([]domain.Application{}, nil)

		_, err := uc.ListApplicants(ctx, "recruiter1", &domain.ApplicantListFilter{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No applicants found")
	})

	t.Run("Should reject unknown sort keys before hitting the store", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		filter := &domain.ApplicantListFilter{Sort: []domain.SortKey{{Field: "passwordHash"}}}
		_, err := uc.ListApplicants(ctx, "recruiter1", filter)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unsupported sort key")
		appRepo.AssertNotCalled(t, "ListApplicants")
	})
}

func TestSearchJobsValidation(t *testing.T) {
	ctx := context.Background()
	applicant := domain.Principal{UserID: "applicant1", Role: domain.RoleApplicant}

	t.Run("Should reject unknown sort keys", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		filter := &domain.JobSearchFilter{Sort: []domain.SortKey{{Field: "recruiter_id"}}}
		_, err := uc.SearchJobs(ctx, applicant, filter)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unsupported sort key")
		jobRepo.AssertNotCalled(t, "Search")
	})

	t.Run("Should reject unknown job types", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		filter := &domain.JobSearchFilter{JobTypes: []string{"gig"}}
		_, err := uc.SearchJobs(ctx, applicant, filter)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown job type")
	})

	t.Run("Should drop myjobs restriction for non-recruiters", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("Search", ctx, mock.MatchedBy(func(f *domain.JobSearchFilter) bool {
			return f.RecruiterID == ""
		})).Return([]domain.JobWithRecruiter{}, nil)

		filter := &domain.JobSearchFilter{RecruiterID: "applicant1"}
		_, err := uc.SearchJobs(ctx, applicant, filter)
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})
}

func TestDeleteJobOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Non-owner delete is an authorization failure", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("DeleteOwned", ctx, "job1", "recruiter2").Return(domain.ErrNotFound)

		err := uc.DeleteJob(ctx, "recruiter2", "job1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You don't have permissions to delete the job")
	})
}

func TestRating(t *testing.T) {
	ctx := context.Background()
	recruiter := domain.Principal{UserID: "recruiter1", Role: domain.RoleRecruiter}
	applicant := domain.Principal{UserID: "applicant1", Role: domain.RoleApplicant}

	t.Run("First rating requires a work relation", func(t *testing.T) {
		repo := new(MockRatingRepo)
		uc := usecase.NewRatingUsecase(repo)

		repo.On("GetScore", ctx, "recruiter1", "applicant1", domain.CategoryApplicant).Return(float64(0), domain.ErrNotFound)
		repo.On("HasWorkRelation", ctx, domain.CategoryApplicant, "recruiter1", "applicant1").Return(false, nil)

		err := uc.Rate(ctx, recruiter, "applicant1", 4)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Applicant didn't worked under you")
		repo.AssertNotCalled(t, "Upsert")
	})

	t.Run("Applicant rating a job they never held is rejected", func(t *testing.T) {
		repo := new(MockRatingRepo)
		uc := usecase.NewRatingUsecase(repo)

		repo.On("GetScore", ctx, "applicant1", "job1", domain.CategoryJob).Return(float64(0), domain.ErrNotFound)
		repo.On("HasWorkRelation", ctx, domain.CategoryJob, "applicant1", "job1").Return(false, nil)

		err := uc.Rate(ctx, applicant, "job1", 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You haven't worked for this job")
	})

	t.Run("Re-rating skips the eligibility check", func(t *testing.T) {
		repo := new(MockRatingRepo)
		uc := usecase.NewRatingUsecase(repo)

		repo.On("GetScore", ctx, "recruiter1", "applicant1", domain.CategoryApplicant).Return(float64(3), nil)
		repo.On("Upsert", ctx, mock.AnythingOfType("*domain.Rating")).Return(nil)

		err := uc.Rate(ctx, recruiter, "applicant1", 5)
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "HasWorkRelation")
	})

	t.Run("Out-of-range scores are rejected", func(t *testing.T) {
		repo := new(MockRatingRepo)
		uc := usecase.NewRatingUsecase(repo)

		assert.Error(t, uc.Rate(ctx, recruiter, "applicant1", 5.5))
		assert.Error(t, uc.Rate(ctx, recruiter, "applicant1", -1))
		repo.AssertNotCalled(t, "GetScore")
	})

	t.Run("MyRating turns a missing rating into the -1 sentinel", func(t *testing.T) {
		repo := new(MockRatingRepo)
		uc := usecase.NewRatingUsecase(repo)

		repo.On("GetScore", ctx, "recruiter1", "applicant1", domain.CategoryApplicant).Return(float64(0), domain.ErrNotFound)

		score, err := uc.MyRating(ctx, recruiter, "applicant1")
		assert.NoError(t, err)
		assert.Equal(t, float64(domain.RatingUnset), score)
	})
}

func TestExportApplicants(t *testing.T) {
	ctx := context.Background()

	apps := []domain.Application{
		{
			ID: "app1", JobID: "job1", ApplicantID: "applicant1",
			RecruiterID: "recruiter1", Status: domain.StatusAccepted,
			SOP:               "Hire me",
			DateOfApplication: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Job:               &domain.Job{ID: "job1", Title: "Backend Engineer"},
			Applicant:         &domain.ApplicantProfile{UserID: "applicant1", Name: "Ada", Rating: 4.5},
		},
	}

	t.Run("CSV export carries the header and one row per applicant", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("ListApplicants", ctx, "recruiter1", mock.Anything).Return(apps, nil)

		data, filename, err := uc.ExportApplicants(ctx, "recruiter1", &domain.ApplicantListFilter{}, "csv")
		assert.NoError(t, err)
		assert.Contains(t, filename, ".csv")
		assert.Contains(t, string(data), "NAME")
		assert.Contains(t, string(data), "Ada")
		assert.Contains(t, string(data), "Backend Engineer")
	})

	t.Run("Default format is xlsx", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("ListApplicants", ctx, "recruiter1", mock.Anything).Return(apps, nil)

		data, filename, err := uc.ExportApplicants(ctx, "recruiter1", &domain.ApplicantListFilter{}, "")
		assert.NoError(t, err)
		assert.Contains(t, filename, ".xlsx")
		assert.NotEmpty(t, data)
	})

	t.Run("Unknown formats are rejected", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), 10)

		appRepo.On("ListApplicants", ctx, "recruiter1", mock.Anything).Return(apps, nil)

		_, _, err := uc.ExportApplicants(ctx, "recruiter1", &domain.ApplicantListFilter{}, "pdf")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unsupported export format")
	})
}
