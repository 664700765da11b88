package usecase

import (
	"context"
	"errors"

	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
)

type ratingUsecase struct {
	ratingRepo domain.RatingRepository
}

func NewRatingUsecase(ratingRepo domain.RatingRepository) domain.RatingUsecase {
	return &ratingUsecase{ratingRepo: ratingRepo}
}

func categoryFor(role string) string {
	if role == domain.RoleRecruiter {
		return domain.CategoryApplicant
	}
	return domain.CategoryJob
}

// Rate records the sender's score for the receiver. A first rating
// requires a completed work relation; re-rating skips the eligibility
// check because the relation was proven when the rating was created.
func (u *ratingUsecase) Rate(ctx context.Context, principal domain.Principal, receiverID string, score float64) error {
	if score < 0 || score > 5 {
		return apperror.BadRequest("Rating must be between 0 and 5")
	}
	category := categoryFor(principal.Role)

	_, err := u.ratingRepo.GetScore(ctx, principal.UserID, receiverID, category)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		ok, relErr := u.ratingRepo.HasWorkRelation(ctx, category, principal.UserID, receiverID)
		if relErr != nil {
			return apperror.Internal(relErr)
		}
		if !ok {
			if category == domain.CategoryApplicant {
				return apperror.BusinessRule("Applicant didn't worked under you. Hence you cannot give a rating.")
			}
			return apperror.BusinessRule("You haven't worked for this job. Hence you cannot give a rating.")
		}
	}

	rating := &domain.Rating{
		Category:   category,
		ReceiverID: receiverID,
		SenderID:   principal.UserID,
		Score:      score,
	}
	if err := u.ratingRepo.Upsert(ctx, rating); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *ratingUsecase) MyRating(ctx context.Context, principal domain.Principal, receiverID string) (float64, error) {
	score, err := u.ratingRepo.GetScore(ctx, principal.UserID, receiverID, categoryFor(principal.Role))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.RatingUnset, nil
	}
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return score, nil
}
