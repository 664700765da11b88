package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/subahan00/job-portal/internal/domain"
)

type applicantProfileRepo struct {
	db *pgxpool.Pool
}

func NewApplicantProfileRepository(db *pgxpool.Pool) domain.ApplicantProfileRepository {
	return &applicantProfileRepo{db: db}
}

func (r *applicantProfileRepo) Create(ctx context.Context, profile *domain.ApplicantProfile) error {
	education, err := json.Marshal(profile.Education)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO applicant_profiles (user_id, name, education, skills, resume, profile_image, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if profile.Rating == 0 {
		profile.Rating = domain.RatingUnset
	}
	_, err = r.db.Exec(ctx, query,
		profile.UserID,
		profile.Name,
		education,
		pq.Array(profile.Skills),
		profile.Resume,
		profile.ProfileImage,
		profile.Rating,
	)
	return err
}

func (r *applicantProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.ApplicantProfile, error) {
	query := `
		SELECT user_id, name, education, skills, resume, profile_image, rating
		FROM applicant_profiles WHERE user_id = $1`

	var p domain.ApplicantProfile
	var education []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &education, pq.Array(&p.Skills),
		&p.Resume, &p.ProfileImage, &p.Rating,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *applicantProfileRepo) Update(ctx context.Context, profile *domain.ApplicantProfile) error {
	education, err := json.Marshal(profile.Education)
	if err != nil {
		return err
	}

	query := `
		UPDATE applicant_profiles
		SET name = $2, education = $3, skills = $4, resume = $5, profile_image = $6
		WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.Name,
		education,
		pq.Array(profile.Skills),
		profile.Resume,
		profile.ProfileImage,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type recruiterProfileRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterProfileRepository(db *pgxpool.Pool) domain.RecruiterProfileRepository {
	return &recruiterProfileRepo{db: db}
}

func (r *recruiterProfileRepo) Create(ctx context.Context, profile *domain.RecruiterProfile) error {
	query := `
		INSERT INTO recruiter_profiles (user_id, name, contact_number, bio)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		profile.UserID, profile.Name, profile.ContactNumber, profile.Bio,
	)
	return err
}

func (r *recruiterProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	query := `
		SELECT user_id, name, contact_number, bio
		FROM recruiter_profiles WHERE user_id = $1`

	var p domain.RecruiterProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.ContactNumber, &p.Bio,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *recruiterProfileRepo) Update(ctx context.Context, profile *domain.RecruiterProfile) error {
	query := `
		UPDATE recruiter_profiles
		SET name = $2, contact_number = $3, bio = $4
		WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.Name, profile.ContactNumber, profile.Bio,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
