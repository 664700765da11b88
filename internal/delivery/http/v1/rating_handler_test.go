package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/subahan00/job-portal/internal/delivery/http/middleware"
	v1 "github.com/subahan00/job-portal/internal/delivery/http/v1"
	"github.com/subahan00/job-portal/internal/domain"
)

type MockRatingUsecase struct {
	mock.Mock
}

func (m *MockRatingUsecase) Rate(ctx context.Context, principal domain.Principal, receiverID string, score float64) error {
	args := m.Called(ctx, principal, receiverID, score)
	return args.Error(0)
}

func (m *MockRatingUsecase) MyRating(ctx context.Context, principal domain.Principal, receiverID string) (float64, error) {
	args := m.Called(ctx, principal, receiverID)
	return args.Get(0).(float64), args.Error(1)
}

func ratingRouter(uc domain.RatingUsecase, principal domain.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), principal.UserID)
		c.Set(string(domain.KeyUserRole), principal.Role)
	})
	r.Use(middleware.ErrorHandler())
	v1.NewRatingHandler(r.Group("/api"), uc)
	return r
}

func TestRateBinding(t *testing.T) {
	recruiter := domain.Principal{UserID: "recruiter1", Role: domain.RoleRecruiter}

	t.Run("A zero score reaches the usecase", func(t *testing.T) {
		uc := new(MockRatingUsecase)
		uc.On("Rate", mock.Anything, recruiter, "applicant1", 0.0).Return(nil)
		router := ratingRouter(uc, recruiter)

		req := httptest.NewRequest(http.MethodPut, "/api/rating",
			strings.NewReader(`{"rating": 0, "applicantId": "applicant1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Rating added successfully")
		uc.AssertExpectations(t)
	})

	t.Run("A missing score is rejected before the usecase", func(t *testing.T) {
		uc := new(MockRatingUsecase)
		router := ratingRouter(uc, recruiter)

		req := httptest.NewRequest(http.MethodPut, "/api/rating",
			strings.NewReader(`{"applicantId": "applicant1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "Rate")
	})

	t.Run("A recruiter must name the applicant", func(t *testing.T) {
		uc := new(MockRatingUsecase)
		router := ratingRouter(uc, recruiter)

		req := httptest.NewRequest(http.MethodPut, "/api/rating",
			strings.NewReader(`{"rating": 4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "applicantId is required")
		uc.AssertNotCalled(t, "Rate")
	})
}
