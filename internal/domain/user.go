package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User roles. A user's role is fixed at signup.
const (
	RoleApplicant = "applicant"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// SignupRequest carries the credentials plus the role-specific profile
// payload; exactly one of the profile sections applies per role.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"type" binding:"required,oneof=applicant recruiter"`

	// Applicant profile fields
	Name      string      `json:"name" binding:"required"`
	Education []Education `json:"education"`
	Skills    []string    `json:"skills"`

	// Recruiter profile fields
	ContactNumber string `json:"contactNumber"`
	Bio           string `json:"bio"`
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token string `json:"token"`
	Role  string `json:"type"`
}

type AuthUsecase interface {
	Signup(ctx context.Context, req *SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// GetCurrentUser refreshes the principal from storage; the middleware
	// uses it so a stale token cannot carry an outdated role.
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
