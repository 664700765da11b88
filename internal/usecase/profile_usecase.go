package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
)

type profileUsecase struct {
	userRepo      domain.UserRepository
	applicantRepo domain.ApplicantProfileRepository
	recruiterRepo domain.RecruiterProfileRepository
	validate      *validator.Validate
}

func NewProfileUsecase(
	userRepo domain.UserRepository,
	applicantRepo domain.ApplicantProfileRepository,
	recruiterRepo domain.RecruiterProfileRepository,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo:      userRepo,
		applicantRepo: applicantRepo,
		recruiterRepo: recruiterRepo,
		validate:      validate,
	}
}

func (u *profileUsecase) GetOwn(ctx context.Context, principal domain.Principal) (*domain.ProfileView, error) {
	return u.viewFor(ctx, principal.UserID, principal.Role)
}

// GetByUserID resolves the role from the user record, so callers can view
// any profile knowing only the user id.
func (u *profileUsecase) GetByUserID(ctx context.Context, userID string) (*domain.ProfileView, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User does not exist")
	}
	return u.viewFor(ctx, user.ID, user.Role)
}

func (u *profileUsecase) viewFor(ctx context.Context, userID, role string) (*domain.ProfileView, error) {
	view := &domain.ProfileView{Role: role}

	switch role {
	case domain.RoleApplicant:
		profile, err := u.applicantRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("User does not exist")
			}
			return nil, apperror.Internal(err)
		}
		view.Applicant = profile
	case domain.RoleRecruiter:
		profile, err := u.recruiterRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("User does not exist")
			}
			return nil, apperror.Internal(err)
		}
		view.Recruiter = profile
	default:
		return nil, apperror.Internal(errors.New("unknown role: " + role))
	}
	return view, nil
}

// UpdateApplicant applies a partial update to the caller's own profile;
// nil patch fields leave the stored value untouched.
func (u *profileUsecase) UpdateApplicant(ctx context.Context, userID string, patch *domain.ApplicantProfilePatch) error {
	profile, err := u.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User does not exist")
		}
		return apperror.Internal(err)
	}

	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Education != nil {
		for _, edu := range *patch.Education {
			if err := u.validate.Struct(edu); err != nil {
				return apperror.BadRequest("Invalid education entry: " + err.Error())
			}
		}
		profile.Education = *patch.Education
	}
	if patch.Skills != nil {
		profile.Skills = *patch.Skills
	}
	if patch.Resume != nil {
		profile.Resume = *patch.Resume
	}
	if patch.ProfileImage != nil {
		profile.ProfileImage = *patch.ProfileImage
	}

	if err := u.applicantRepo.Update(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *profileUsecase) UpdateRecruiter(ctx context.Context, userID string, patch *domain.RecruiterProfilePatch) error {
	profile, err := u.recruiterRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User does not exist")
		}
		return apperror.Internal(err)
	}

	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.ContactNumber != nil {
		profile.ContactNumber = *patch.ContactNumber
	}
	if patch.Bio != nil {
		profile.Bio = *patch.Bio
	}

	if err := u.recruiterRepo.Update(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
