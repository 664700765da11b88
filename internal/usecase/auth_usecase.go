package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
	"github.com/subahan00/job-portal/pkg/token"
)

type authUsecase struct {
	userRepo      domain.UserRepository
	applicantRepo domain.ApplicantProfileRepository
	recruiterRepo domain.RecruiterProfileRepository
	tokens        *token.Manager
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	applicantRepo domain.ApplicantProfileRepository,
	recruiterRepo domain.RecruiterProfileRepository,
	tokens *token.Manager,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		applicantRepo: applicantRepo,
		recruiterRepo: recruiterRepo,
		tokens:        tokens,
	}
}

// Signup creates the user and its role-specific profile, then issues a
// bearer token. The role is fixed here and never changes afterwards.
func (u *authUsecase) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResult, error) {
	if existing, err := u.userRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, apperror.Conflict("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	switch req.Role {
	case domain.RoleApplicant:
		profile := &domain.ApplicantProfile{
			UserID:    user.ID,
			Name:      req.Name,
			Education: req.Education,
			Skills:    req.Skills,
			Rating:    domain.RatingUnset,
		}
		if err := u.applicantRepo.Create(ctx, profile); err != nil {
			return nil, apperror.Internal(err)
		}
	case domain.RoleRecruiter:
		profile := &domain.RecruiterProfile{
			UserID:        user.ID,
			Name:          req.Name,
			ContactNumber: req.ContactNumber,
			Bio:           req.Bio,
		}
		if err := u.recruiterRepo.Create(ctx, profile); err != nil {
			return nil, apperror.Internal(err)
		}
	default:
		return nil, apperror.BadRequest("Unknown account type")
	}

	signed, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: signed, Role: user.Role}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	signed, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: signed, Role: user.Role}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
