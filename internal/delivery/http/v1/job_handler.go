package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/subahan00/job-portal/internal/delivery/http/middleware"
	"github.com/subahan00/job-portal/internal/delivery/http/response"
	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, recruiter *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	protected.GET("/jobs", handler.Search)
	protected.GET("/jobs/:id", handler.Get)

	recruiter.POST("/jobs", handler.Create)
	recruiter.PUT("/jobs/:id", handler.Update)
	recruiter.DELETE("/jobs/:id", handler.Delete)
}

type CreateJobRequest struct {
	Title         string    `json:"title" binding:"required"`
	MaxApplicants int       `json:"maxApplicants" binding:"required"`
	MaxPositions  int       `json:"maxPositions" binding:"required"`
	Deadline      time.Time `json:"deadline" binding:"required"`
	Skillsets     []string  `json:"skillsets"`
	JobType       string    `json:"jobType" binding:"required"`
	Duration      int       `json:"duration"`
	Salary        int64     `json:"salary"`
}

// Create godoc
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body      CreateJobRequest  true  "Job posting"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:         req.Title,
		MaxApplicants: req.MaxApplicants,
		MaxPositions:  req.MaxPositions,
		DateOfPosting: time.Now(),
		Deadline:      req.Deadline,
		Skillsets:     req.Skillsets,
		JobType:       req.JobType,
		Duration:      req.Duration,
		Salary:        req.Salary,
	}

	principal := middleware.PrincipalFrom(c)
	if err := h.jobUC.CreateJob(c.Request.Context(), principal.UserID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job added successfully to the database", job)
}

// parseJobSearchFilter maps the query string onto the typed filter.
// Numeric parse failures and unknown keys surface as validation errors
// before the store is touched.
func parseJobSearchFilter(c *gin.Context, principal domain.Principal) (*domain.JobSearchFilter, error) {
	filter := &domain.JobSearchFilter{
		Query:    c.Query("q"),
		JobTypes: c.QueryArray("jobType"),
	}

	if v := c.Query("salaryMin"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, apperror.BadRequest("salaryMin must be a number")
		}
		filter.SalaryMin = &n
	}
	if v := c.Query("salaryMax"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, apperror.BadRequest("salaryMax must be a number")
		}
		filter.SalaryMax = &n
	}
	if v := c.Query("duration"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, apperror.BadRequest("duration must be a positive number")
		}
		filter.MaxDuration = &n
	}
	if c.Query("myjobs") == "1" {
		filter.RecruiterID = principal.UserID
	}

	for _, field := range c.QueryArray("asc") {
		filter.Sort = append(filter.Sort, domain.SortKey{Field: field})
	}
	for _, field := range c.QueryArray("desc") {
		filter.Sort = append(filter.Sort, domain.SortKey{Field: field, Desc: true})
	}

	return filter, nil
}

// Search godoc
// @Summary      Search jobs
// @Description  Filters: q (title substring), jobType (repeatable), salaryMin/salaryMax, duration (strict upper bound), asc/desc sort keys, myjobs=1 for a recruiter's own postings.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	filter, err := parseJobSearchFilter(c, principal)
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), principal, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs", jobs)
}

// Get godoc
// @Summary      Job detail
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job", job)
}

// Update godoc
// @Summary      Update a job posting
// @Description  Only maxApplicants, maxPositions and deadline can change after posting.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string                true  "Job ID"
// @Param        patch  body      domain.JobUpdatePatch  true  "Fields to change"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	var patch domain.JobUpdatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	principal := middleware.PrincipalFrom(c)
	if err := h.jobUC.UpdateJob(c.Request.Context(), principal.UserID, c.Param("id"), &patch); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details updated successfully", nil)
}

// Delete godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if err := h.jobUC.DeleteJob(c.Request.Context(), principal.UserID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
