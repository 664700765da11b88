package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/subahan00/job-portal/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (recruiter_id, title, max_applicants, max_positions, accepted_count,
		                  date_of_posting, deadline, skillsets, job_type, duration, salary, rating)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	if job.Rating == 0 {
		job.Rating = domain.RatingUnset
	}
	return r.db.QueryRow(ctx, query,
		job.RecruiterID, job.Title, job.MaxApplicants, job.MaxPositions,
		job.DateOfPosting, job.Deadline, pq.Array(job.Skillsets),
		job.JobType, job.Duration, job.Salary, job.Rating,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `
		SELECT id, recruiter_id, title, max_applicants, max_positions, accepted_count,
		       date_of_posting, deadline, skillsets, job_type, duration, salary, rating
		FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.RecruiterID, &job.Title, &job.MaxApplicants, &job.MaxPositions,
		&job.AcceptedCount, &job.DateOfPosting, &job.Deadline, pq.Array(&job.Skillsets),
		&job.JobType, &job.Duration, &job.Salary, &job.Rating,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// jobSortColumns maps whitelisted sort keys to ORDER BY columns. Anything
// outside this map never reaches the query.
var jobSortColumns = map[string]string{
	"salary":        "j.salary",
	"duration":      "j.duration",
	"rating":        "j.rating",
	"title":         "j.title",
	"deadline":      "j.deadline",
	"dateOfPosting": "j.date_of_posting",
	"maxApplicants": "j.max_applicants",
	"maxPositions":  "j.max_positions",
}

// buildJobSearchQuery assembles the search SQL from the typed filter.
// Filters combine conjunctively; the recruiter join is an inner join so
// jobs without a recruiter profile are dropped.
func buildJobSearchQuery(filter *domain.JobSearchFilter) (string, []interface{}, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT j.id, j.recruiter_id, j.title, j.max_applicants, j.max_positions, j.accepted_count,
		       j.date_of_posting, j.deadline, j.skillsets, j.job_type, j.duration, j.salary, j.rating,
		       r.user_id, r.name, r.contact_number, r.bio
		FROM jobs j
		JOIN recruiter_profiles r ON r.user_id = j.recruiter_id`)

	var conds []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.RecruiterID != "" {
		conds = append(conds, "j.recruiter_id = "+arg(filter.RecruiterID))
	}
	if filter.Query != "" {
		conds = append(conds, "j.title ILIKE '%' || "+arg(filter.Query)+" || '%'")
	}
	if len(filter.JobTypes) > 0 {
		conds = append(conds, "j.job_type = ANY("+arg(pq.Array(filter.JobTypes))+")")
	}
	if filter.SalaryMin != nil {
		conds = append(conds, "j.salary >= "+arg(*filter.SalaryMin))
	}
	if filter.SalaryMax != nil {
		conds = append(conds, "j.salary <= "+arg(*filter.SalaryMax))
	}
	if filter.MaxDuration != nil {
		conds = append(conds, "j.duration < "+arg(*filter.MaxDuration))
	}

	if len(conds) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	if len(filter.Sort) > 0 {
		var orders []string
		for _, key := range filter.Sort {
			col, ok := jobSortColumns[key.Field]
			if !ok {
				return "", nil, fmt.Errorf("unsupported sort key: %s", key.Field)
			}
			dir := "ASC"
			if key.Desc {
				dir = "DESC"
			}
			orders = append(orders, col+" "+dir)
		}
		sb.WriteString("\n\t\tORDER BY ")
		sb.WriteString(strings.Join(orders, ", "))
	}

	return sb.String(), args, nil
}

func (r *jobRepo) Search(ctx context.Context, filter *domain.JobSearchFilter) ([]domain.JobWithRecruiter, error) {
	query, args, err := buildJobSearchQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithRecruiter
	for rows.Next() {
		var job domain.JobWithRecruiter
		if err := rows.Scan(
			&job.ID, &job.RecruiterID, &job.Title, &job.MaxApplicants, &job.MaxPositions,
			&job.AcceptedCount, &job.DateOfPosting, &job.Deadline, pq.Array(&job.Skillsets),
			&job.JobType, &job.Duration, &job.Salary, &job.Rating,
			&job.Recruiter.UserID, &job.Recruiter.Name, &job.Recruiter.ContactNumber, &job.Recruiter.Bio,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs SET max_applicants = $2, max_positions = $3, deadline = $4
		WHERE id = $1 AND recruiter_id = $5`

	result, err := r.db.Exec(ctx, query,
		job.ID, job.MaxApplicants, job.MaxPositions, job.Deadline, job.RecruiterID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) DeleteOwned(ctx context.Context, id, recruiterID string) error {
	query := `DELETE FROM jobs WHERE id = $1 AND recruiter_id = $2`
	result, err := r.db.Exec(ctx, query, id, recruiterID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
