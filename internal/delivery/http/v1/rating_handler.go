package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subahan00/job-portal/internal/delivery/http/middleware"
	"github.com/subahan00/job-portal/internal/delivery/http/response"
	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
)

type RatingHandler struct {
	ratingUC domain.RatingUsecase
}

func NewRatingHandler(protected *gin.RouterGroup, ratingUC domain.RatingUsecase) {
	handler := &RatingHandler{ratingUC: ratingUC}

	protected.PUT("/rating", handler.Rate)
	protected.GET("/rating", handler.MyRating)
}

// RateRequest targets an applicant when a recruiter rates and a job when
// an applicant rates; exactly one id field applies per role. Rating is a
// pointer so an explicit 0 survives the required check.
type RateRequest struct {
	Rating      *float64 `json:"rating" binding:"required"`
	ApplicantID string   `json:"applicantId"`
	JobID       string   `json:"jobId"`
}

func (r *RateRequest) receiverFor(role string) (string, error) {
	if role == domain.RoleRecruiter {
		if r.ApplicantID == "" {
			return "", apperror.BadRequest("applicantId is required")
		}
		return r.ApplicantID, nil
	}
	if r.JobID == "" {
		return "", apperror.BadRequest("jobId is required")
	}
	return r.JobID, nil
}

// Rate godoc
// @Summary      Rate an applicant or a job
// @Description  Recruiters rate applicants, applicants rate jobs; 0-5 scale, at most one rating per pair, resubmission overwrites. Eligibility requires a completed work relation.
// @Tags         rating
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      RateRequest  true  "Score and receiver"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /api/rating [put]
func (h *RatingHandler) Rate(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	principal := middleware.PrincipalFrom(c)
	receiverID, err := req.receiverFor(principal.Role)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.ratingUC.Rate(c.Request.Context(), principal, receiverID, *req.Rating); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Rating added successfully", nil)
}

// MyRating godoc
// @Summary      Own rating of a receiver
// @Description  Returns {rating: -1} when the caller has not rated the receiver yet.
// @Tags         rating
// @Produce      json
// @Security     BearerAuth
// @Param        id   query     string  true  "Receiver id (applicant or job)"
// @Success      200  {object}  response.Response
// @Router       /api/rating [get]
func (h *RatingHandler) MyRating(c *gin.Context) {
	receiverID := c.Query("id")
	if receiverID == "" {
		c.Error(apperror.BadRequest("id is required"))
		return
	}

	score, err := h.ratingUC.MyRating(c.Request.Context(), middleware.PrincipalFrom(c), receiverID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Rating", gin.H{"rating": score})
}
