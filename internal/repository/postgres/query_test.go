package postgres

import (
	"testing"

	"github.com/subahan00/job-portal/internal/domain"

	"github.com/stretchr/testify/assert"
)

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }

func TestBuildJobSearchQuery(t *testing.T) {
	t.Run("No filters produces a bare join", func(t *testing.T) {
		query, args, err := buildJobSearchQuery(&domain.JobSearchFilter{})
		assert.NoError(t, err)
		assert.Empty(t, args)
		assert.Contains(t, query, "JOIN recruiter_profiles r ON r.user_id = j.recruiter_id")
		assert.NotContains(t, query, "WHERE")
		assert.NotContains(t, query, "ORDER BY")
	})

	t.Run("All filters combine conjunctively with ordered placeholders", func(t *testing.T) {
		filter := &domain.JobSearchFilter{
			Query:       "engineer",
			JobTypes:    []string{domain.JobTypeFullTime, domain.JobTypePartTime},
			SalaryMin:   int64p(50000),
			SalaryMax:   int64p(120000),
			MaxDuration: intp(6),
			RecruiterID: "recruiter1",
		}
		query, args, err := buildJobSearchQuery(filter)
		assert.NoError(t, err)
		assert.Len(t, args, 6)
		assert.Contains(t, query, "j.recruiter_id = $1")
		assert.Contains(t, query, "j.title ILIKE '%' || $2 || '%'")
		assert.Contains(t, query, "j.job_type = ANY($3)")
		assert.Contains(t, query, "j.salary >= $4")
		assert.Contains(t, query, "j.salary <= $5")
		assert.Contains(t, query, "j.duration < $6")
		assert.Contains(t, query, " AND ")
	})

	t.Run("Sort keys map to columns with direction", func(t *testing.T) {
		filter := &domain.JobSearchFilter{
			Sort: []domain.SortKey{
				{Field: "salary", Desc: true},
				{Field: "dateOfPosting"},
			},
		}
		query, _, err := buildJobSearchQuery(filter)
		assert.NoError(t, err)
		assert.Contains(t, query, "ORDER BY j.salary DESC, j.date_of_posting ASC")
	})

	t.Run("Unknown sort keys fail instead of reaching SQL", func(t *testing.T) {
		filter := &domain.JobSearchFilter{Sort: []domain.SortKey{{Field: "password_hash"}}}
		_, _, err := buildJobSearchQuery(filter)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported sort key")
	})
}

func TestBuildApplicantListQuery(t *testing.T) {
	t.Run("Recruiter scoping is always the first condition", func(t *testing.T) {
		query, args, err := buildApplicantListQuery("recruiter1", &domain.ApplicantListFilter{})
		assert.NoError(t, err)
		assert.Equal(t, []interface{}{"recruiter1"}, args)
		assert.Contains(t, query, "a.recruiter_id = $1")
		assert.Contains(t, query, "ORDER BY a.id ASC")
	})

	t.Run("Job and status filters extend the placeholder list", func(t *testing.T) {
		filter := &domain.ApplicantListFilter{
			JobID:    "job1",
			Statuses: []string{domain.StatusApplied, domain.StatusShortlisted},
		}
		query, args, err := buildApplicantListQuery("recruiter1", filter)
		assert.NoError(t, err)
		assert.Len(t, args, 3)
		assert.Contains(t, query, "a.job_id = $2")
		assert.Contains(t, query, "a.status = ANY($3)")
	})

	t.Run("Sort keys use joined table columns", func(t *testing.T) {
		filter := &domain.ApplicantListFilter{
			Sort: []domain.SortKey{
				{Field: "rating", Desc: true},
				{Field: "name"},
			},
		}
		query, _, err := buildApplicantListQuery("recruiter1", filter)
		assert.NoError(t, err)
		assert.Contains(t, query, "ORDER BY p.rating DESC, p.name ASC")
	})

	t.Run("Unknown sort keys fail", func(t *testing.T) {
		filter := &domain.ApplicantListFilter{Sort: []domain.SortKey{{Field: "sop"}}}
		_, _, err := buildApplicantListQuery("recruiter1", filter)
		assert.Error(t, err)
	})
}
