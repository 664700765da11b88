package domain

import "context"

// Rating categories: the same score scale targets either an applicant or
// a job depending on who is rating.
const (
	CategoryApplicant = "applicant"
	CategoryJob       = "job"
)

// Rating is owned by its sender; at most one per (sender, receiver,
// category) triple, later submissions overwrite the score.
type Rating struct {
	Category   string  `json:"category"`
	ReceiverID string  `json:"receiverId"`
	SenderID   string  `json:"senderId"`
	Score      float64 `json:"rating"`
}

type RatingRepository interface {
	// GetScore returns the sender's existing rating of the receiver;
	// ErrNotFound when none exists yet.
	GetScore(ctx context.Context, senderID, receiverID, category string) (float64, error)

	// HasWorkRelation reports at least one accepted or finished
	// application linking sender and receiver for the category.
	HasWorkRelation(ctx context.Context, category, senderID, receiverID string) (bool, error)

	// Upsert stores the rating and, in the same transaction, recomputes
	// the receiver's average from the full rating set and writes it back
	// to the applicant profile or the job.
	Upsert(ctx context.Context, rating *Rating) error
}

type RatingUsecase interface {
	Rate(ctx context.Context, principal Principal, receiverID string, score float64) error
	// MyRating returns RatingUnset (-1) when the sender has not rated the
	// receiver yet; "not yet rated" is an expected state, not an error.
	MyRating(ctx context.Context, principal Principal, receiverID string) (float64, error)
}
