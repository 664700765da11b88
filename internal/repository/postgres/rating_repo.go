package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/subahan00/job-portal/internal/domain"
)

type ratingRepo struct {
	db *pgxpool.Pool
}

func NewRatingRepository(db *pgxpool.Pool) domain.RatingRepository {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) GetScore(ctx context.Context, senderID, receiverID, category string) (float64, error) {
	query := `
		SELECT score FROM ratings
		WHERE sender_id = $1 AND receiver_id = $2 AND category = $3`

	var score float64
	err := r.db.QueryRow(ctx, query, senderID, receiverID, category).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return score, err
}

func (r *ratingRepo) HasWorkRelation(ctx context.Context, category, senderID, receiverID string) (bool, error) {
	// A rating is only allowed across an accepted or finished
	// application linking the two parties.
	var query string
	switch category {
	case domain.CategoryApplicant:
		// Recruiter rates an applicant who worked under them.
		query = `
			SELECT EXISTS(
				SELECT 1 FROM applications
				WHERE applicant_id = $2 AND recruiter_id = $1
				  AND status IN ('accepted', 'finished')
			)`
	case domain.CategoryJob:
		// Applicant rates a job they worked.
		query = `
			SELECT EXISTS(
				SELECT 1 FROM applications
				WHERE applicant_id = $1 AND job_id = $2
				  AND status IN ('accepted', 'finished')
			)`
	default:
		return false, errors.New("unknown rating category: " + category)
	}

	var exists bool
	err := r.db.QueryRow(ctx, query, senderID, receiverID).Scan(&exists)
	return exists, err
}

// Upsert stores the score and refreshes the receiver's average inside one
// transaction, so the stored average always equals the mean of the
// committed rating set.
func (r *ratingRepo) Upsert(ctx context.Context, rating *domain.Rating) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO ratings (category, receiver_id, sender_id, score)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (category, receiver_id, sender_id)
		DO UPDATE SET score = EXCLUDED.score`,
		rating.Category, rating.ReceiverID, rating.SenderID, rating.Score,
	)
	if err != nil {
		return err
	}

	// Full recompute over the rating set, not an incremental update.
	var avg float64
	err = tx.QueryRow(ctx, `
		SELECT AVG(score) FROM ratings
		WHERE receiver_id = $1 AND category = $2`,
		rating.ReceiverID, rating.Category,
	).Scan(&avg)
	if err != nil {
		return err
	}

	var target string
	switch rating.Category {
	case domain.CategoryApplicant:
		target = `UPDATE applicant_profiles SET rating = $2 WHERE user_id = $1`
	case domain.CategoryJob:
		target = `UPDATE jobs SET rating = $2 WHERE id = $1`
	default:
		return errors.New("unknown rating category: " + rating.Category)
	}

	result, err := tx.Exec(ctx, target, rating.ReceiverID, avg)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}
