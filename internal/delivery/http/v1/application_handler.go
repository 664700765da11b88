package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subahan00/job-portal/internal/delivery/http/middleware"
	"github.com/subahan00/job-portal/internal/delivery/http/response"
	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected, applicant, recruiter *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	applicant.POST("/jobs/:id/applications", handler.Apply)

	protected.GET("/applications", handler.ListOwn)
	protected.PUT("/applications/:id", handler.UpdateStatus)

	recruiter.GET("/jobs/:id/applications", handler.ListForJob)
	recruiter.GET("/applicants", handler.ListApplicants)
	recruiter.GET("/applicants/export", handler.ExportApplicants)
}

type ApplyRequest struct {
	SOP string `json:"sop"`
}

// Apply godoc
// @Summary      Apply for a job
// @Description  Submits an application with a statement of purpose. All submission guards run in a fixed order; the first failure wins.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Job ID"
// @Param        body  body      ApplyRequest  true  "Statement of purpose"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /api/jobs/{id}/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	principal := middleware.PrincipalFrom(c)
	if err := h.appUC.Apply(c.Request.Context(), principal.UserID, c.Param("id"), req.SOP); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job application successful", nil)
}

// ListOwn godoc
// @Summary      Own applications
// @Description  Applicants see their submissions; recruiters see applications to their jobs. Newest first, joined with job and profiles.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /api/applications [get]
func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	apps, err := h.appUC.ListOwn(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", apps)
}

// UpdateStatus godoc
// @Summary      Move an application through the workflow
// @Description  Recruiters shortlist/reject/accept/finish; applicants cancel. Accepting runs transactionally and cancels the applicant's other active applications.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Application ID"
// @Param        body  body      domain.StatusUpdate  true  "Requested status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /api/applications/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var upd domain.StatusUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg, err := h.appUC.UpdateStatus(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), &upd)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, msg, nil)
}

// ListForJob godoc
// @Summary      Applications for one job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true   "Job ID"
// @Param        status  query     string  false  "Status filter"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /api/jobs/{id}/applications [get]
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	apps, err := h.appUC.ListForJob(c.Request.Context(), principal.UserID, c.Param("id"), c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", apps)
}

func parseApplicantListFilter(c *gin.Context) *domain.ApplicantListFilter {
	filter := &domain.ApplicantListFilter{
		JobID:    c.Query("jobId"),
		Statuses: c.QueryArray("status"),
	}
	for _, field := range c.QueryArray("asc") {
		filter.Sort = append(filter.Sort, domain.SortKey{Field: field})
	}
	for _, field := range c.QueryArray("desc") {
		filter.Sort = append(filter.Sort, domain.SortKey{Field: field, Desc: true})
	}
	return filter
}

// ListApplicants godoc
// @Summary      Applicants across the recruiter's jobs
// @Description  Filters: jobId, status (repeatable), asc/desc sort keys. An empty result is a 404 per the listing contract.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/applicants [get]
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	apps, err := h.appUC.ListApplicants(c.Request.Context(), principal.UserID, parseApplicantListFilter(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicants", apps)
}

// ExportApplicants godoc
// @Summary      Export the applicant listing as a file
// @Description  Same filters as the listing; format=xlsx (default) or csv. The response is a file attachment.
// @Tags         applications
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        format  query  string  false  "xlsx or csv"
// @Success      200
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/applicants/export [get]
func (h *ApplicationHandler) ExportApplicants(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	format := c.Query("format")

	data, filename, err := h.appUC.ExportApplicants(c.Request.Context(), principal.UserID, parseApplicantListFilter(c), format)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == "csv" {
		contentType = "text/csv"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
