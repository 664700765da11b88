package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/subahan00/job-portal/internal/domain"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, applicant_id, recruiter_id, status, sop, date_of_application)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	app.DateOfApplication = time.Now()
	if app.Status == "" {
		app.Status = domain.StatusApplied
	}
	return r.db.QueryRow(ctx, query,
		app.JobID, app.ApplicantID, app.RecruiterID, app.Status, app.SOP, app.DateOfApplication,
	).Scan(&app.ID)
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `
		SELECT id, job_id, applicant_id, recruiter_id, status, sop, date_of_application, date_of_joining
		FROM applications WHERE id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.RecruiterID,
		&app.Status, &app.SOP, &app.DateOfApplication, &app.DateOfJoining,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) HasNonTerminal(ctx context.Context, applicantID, jobID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM applications
			WHERE applicant_id = $1 AND job_id = $2
			  AND status = ANY($3)
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query, applicantID, jobID, pq.Array(domain.NonTerminalStatuses)).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) CountActiveForJob(ctx context.Context, jobID string) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1 AND status = ANY($2)`
	var count int
	err := r.db.QueryRow(ctx, query, jobID, pq.Array(domain.NonTerminalStatuses)).Scan(&count)
	return count, err
}

func (r *applicationRepo) CountActiveForApplicant(ctx context.Context, applicantID string) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE applicant_id = $1 AND status = ANY($2)`
	var count int
	err := r.db.QueryRow(ctx, query, applicantID, pq.Array(domain.NonTerminalStatuses)).Scan(&count)
	return count, err
}

func (r *applicationRepo) CountAcceptedForApplicant(ctx context.Context, applicantID string) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE applicant_id = $1 AND status = 'accepted'`
	var count int
	err := r.db.QueryRow(ctx, query, applicantID).Scan(&count)
	return count, err
}

// joinedSelect is the column list shared by the joined listings: the
// application, its job, the applicant profile and the recruiter profile.
const joinedSelect = `
	SELECT a.id, a.job_id, a.applicant_id, a.recruiter_id, a.status, a.sop,
	       a.date_of_application, a.date_of_joining,
	       j.id, j.recruiter_id, j.title, j.max_applicants, j.max_positions, j.accepted_count,
	       j.date_of_posting, j.deadline, j.skillsets, j.job_type, j.duration, j.salary, j.rating,
	       p.user_id, p.name, p.education, p.skills, p.resume, p.profile_image, p.rating,
	       r.user_id, r.name, r.contact_number, r.bio
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN applicant_profiles p ON p.user_id = a.applicant_id
	JOIN recruiter_profiles r ON r.user_id = a.recruiter_id`

func scanJoined(rows pgx.Rows) (*domain.Application, error) {
	var app domain.Application
	var job domain.Job
	var applicant domain.ApplicantProfile
	var recruiter domain.RecruiterProfile
	var education []byte

	if err := rows.Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.RecruiterID, &app.Status, &app.SOP,
		&app.DateOfApplication, &app.DateOfJoining,
		&job.ID, &job.RecruiterID, &job.Title, &job.MaxApplicants, &job.MaxPositions, &job.AcceptedCount,
		&job.DateOfPosting, &job.Deadline, pq.Array(&job.Skillsets), &job.JobType, &job.Duration,
		&job.Salary, &job.Rating,
		&applicant.UserID, &applicant.Name, &education, pq.Array(&applicant.Skills),
		&applicant.Resume, &applicant.ProfileImage, &applicant.Rating,
		&recruiter.UserID, &recruiter.Name, &recruiter.ContactNumber, &recruiter.Bio,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(education, &applicant.Education); err != nil {
		return nil, err
	}

	app.Job = &job
	app.Applicant = &applicant
	app.Recruiter = &recruiter
	return &app, nil
}

func (r *applicationRepo) listJoined(ctx context.Context, query string, args ...interface{}) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanJoined(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) ListForApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := joinedSelect + `
	WHERE a.applicant_id = $1
	ORDER BY a.date_of_application DESC`
	return r.listJoined(ctx, query, applicantID)
}

func (r *applicationRepo) ListForRecruiter(ctx context.Context, recruiterID string) ([]domain.Application, error) {
	query := joinedSelect + `
	WHERE a.recruiter_id = $1
	ORDER BY a.date_of_application DESC`
	return r.listJoined(ctx, query, recruiterID)
}

func (r *applicationRepo) ListForJob(ctx context.Context, jobID, recruiterID, status string) ([]domain.Application, error) {
	query := `
		SELECT id, job_id, applicant_id, recruiter_id, status, sop, date_of_application, date_of_joining
		FROM applications
		WHERE job_id = $1 AND recruiter_id = $2`
	args := []interface{}{jobID, recruiterID}

	if status != "" {
		query += ` AND status = $3`
		args = append(args, status)
	}
	query += ` ORDER BY date_of_application DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.RecruiterID,
			&app.Status, &app.SOP, &app.DateOfApplication, &app.DateOfJoining,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// applicantSortColumns maps whitelisted applicant-listing sort keys to
// ORDER BY columns.
var applicantSortColumns = map[string]string{
	"name":              "p.name",
	"jobTitle":          "j.title",
	"dateOfApplication": "a.date_of_application",
	"dateOfJoining":     "a.date_of_joining",
	"rating":            "p.rating",
}

func buildApplicantListQuery(recruiterID string, filter *domain.ApplicantListFilter) (string, []interface{}, error) {
	var sb strings.Builder
	sb.WriteString(joinedSelect)

	conds := []string{"a.recruiter_id = $1"}
	args := []interface{}{recruiterID}

	if filter.JobID != "" {
		args = append(args, filter.JobID)
		conds = append(conds, fmt.Sprintf("a.job_id = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		args = append(args, pq.Array(filter.Statuses))
		conds = append(conds, fmt.Sprintf("a.status = ANY($%d)", len(args)))
	}

	sb.WriteString("\n\tWHERE ")
	sb.WriteString(strings.Join(conds, " AND "))

	if len(filter.Sort) == 0 {
		sb.WriteString("\n\tORDER BY a.id ASC")
		return sb.String(), args, nil
	}

	var orders []string
	for _, key := range filter.Sort {
		col, ok := applicantSortColumns[key.Field]
		if !ok {
			return "", nil, fmt.Errorf("unsupported sort key: %s", key.Field)
		}
		dir := "ASC"
		if key.Desc {
			dir = "DESC"
		}
		orders = append(orders, col+" "+dir)
	}
	sb.WriteString("\n\tORDER BY ")
	sb.WriteString(strings.Join(orders, ", "))

	return sb.String(), args, nil
}

func (r *applicationRepo) ListApplicants(ctx context.Context, recruiterID string, filter *domain.ApplicantListFilter) ([]domain.Application, error) {
	query, args, err := buildApplicantListQuery(recruiterID, filter)
	if err != nil {
		return nil, err
	}
	return r.listJoined(ctx, query, args...)
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE applications SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Accept performs the accept path atomically. The job row is locked for
// the duration so two concurrent accepts cannot both pass the capacity
// check, and a partial failure rolls back instead of leaving cancelled
// siblings next to a stale counter.
func (r *applicationRepo) Accept(ctx context.Context, app *domain.Application, dateOfJoining time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var maxPositions int
	err = tx.QueryRow(ctx,
		`SELECT max_positions FROM jobs WHERE id = $1 FOR UPDATE`, app.JobID,
	).Scan(&maxPositions)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	// Live recount rather than trusting the stored counter. The target
	// row is excluded so a concurrent accept of the same application
	// falls through to the guarded status write below.
	var accepted int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE job_id = $1 AND status = 'accepted' AND id <> $2`,
		app.JobID, app.ID,
	).Scan(&accepted)
	if err != nil {
		return err
	}
	if accepted >= maxPositions {
		return domain.ErrPositionsFilled
	}

	// Guarded write: the FSM admits accepted only from shortlisted, so
	// zero rows affected means the status moved under us.
	result, err := tx.Exec(ctx,
		`UPDATE applications SET status = 'accepted', date_of_joining = $2
		 WHERE id = $1 AND status = 'shortlisted'`,
		app.ID, dateOfJoining,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrStatusConflict
	}

	// An applicant cannot hold two simultaneous active offers: cancel
	// every other still-progressing application they own.
	_, err = tx.Exec(ctx,
		`UPDATE applications SET status = 'cancelled'
		 WHERE applicant_id = $1 AND id <> $2 AND status IN ('applied', 'shortlisted')`,
		app.ApplicantID, app.ID,
	)
	if err != nil {
		return err
	}

	// Counter is derived from the rows after the writes so it cannot
	// drift from the true accepted count.
	_, err = tx.Exec(ctx,
		`UPDATE jobs SET accepted_count = (
			SELECT COUNT(*) FROM applications WHERE job_id = $1 AND status = 'accepted'
		 ) WHERE id = $1`,
		app.JobID,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
