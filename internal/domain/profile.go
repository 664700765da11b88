package domain

import "context"

// RatingUnset is the stored sentinel for "no ratings yet" on both
// applicant profiles and jobs.
const RatingUnset = -1

// Education is one entry of an applicant's education history.
type Education struct {
	Institution string `json:"institutionName" validate:"required"`
	StartYear   int    `json:"startYear" validate:"required,min=1930,max=2100"`
	EndYear     *int   `json:"endYear,omitempty" validate:"omitempty,min=1930,max=2100"`
}

// ApplicantProfile is mutated only by the owning user; Rating is written
// by the rating workflow.
type ApplicantProfile struct {
	UserID       string      `json:"userId"`
	Name         string      `json:"name"`
	Education    []Education `json:"education"`
	Skills       []string    `json:"skills"`
	Resume       string      `json:"resume"`
	ProfileImage string      `json:"profile"`
	Rating       float64     `json:"rating"`
}

type RecruiterProfile struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
	Bio           string `json:"bio"`
}

// ApplicantProfilePatch holds a partial update; nil fields are untouched.
type ApplicantProfilePatch struct {
	Name         *string      `json:"name"`
	Education    *[]Education `json:"education"`
	Skills       *[]string    `json:"skills"`
	Resume       *string      `json:"resume"`
	ProfileImage *string      `json:"profile"`
}

type RecruiterProfilePatch struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contactNumber"`
	Bio           *string `json:"bio"`
}

// ProfileView is the role-tagged union returned by profile reads.
type ProfileView struct {
	Role      string            `json:"type"`
	Applicant *ApplicantProfile `json:"applicant,omitempty"`
	Recruiter *RecruiterProfile `json:"recruiter,omitempty"`
}

type ApplicantProfileRepository interface {
	Create(ctx context.Context, profile *ApplicantProfile) error
	GetByUserID(ctx context.Context, userID string) (*ApplicantProfile, error)
	Update(ctx context.Context, profile *ApplicantProfile) error
}

type RecruiterProfileRepository interface {
	Create(ctx context.Context, profile *RecruiterProfile) error
	GetByUserID(ctx context.Context, userID string) (*RecruiterProfile, error)
	Update(ctx context.Context, profile *RecruiterProfile) error
}

type ProfileUsecase interface {
	GetOwn(ctx context.Context, principal Principal) (*ProfileView, error)
	GetByUserID(ctx context.Context, userID string) (*ProfileView, error)
	UpdateApplicant(ctx context.Context, userID string, patch *ApplicantProfilePatch) error
	UpdateRecruiter(ctx context.Context, userID string, patch *RecruiterProfilePatch) error
}
