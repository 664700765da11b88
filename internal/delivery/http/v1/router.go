package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/subahan00/job-portal/config"
	_ "github.com/subahan00/job-portal/docs"
	"github.com/subahan00/job-portal/internal/delivery/http/middleware"
	"github.com/subahan00/job-portal/internal/delivery/http/response"
	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/storage"
	"github.com/subahan00/job-portal/pkg/token"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	ProfileUC     domain.ProfileUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	RatingUC      domain.RatingUsecase
	Tokens        *token.Manager
	Store         storage.Store
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	if deps.Config.RateLimitGlobalEnabled {
		r.Use(middleware.RateLimitMiddleware(
			middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	}

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Disk-stored uploads are served statically; profiles reference the
	// /public paths returned by the upload endpoints.
	if deps.Config.StorageDriver == "disk" {
		r.Static("/public", deps.Config.UploadDir)
	}

	// Public routes, rate limited against credential stuffing
	public := r.Group("")
	public.Use(middleware.RateLimitMiddleware(
		middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window)))
	NewAuthHandler(public, deps.AuthUC)

	// Protected routes
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	applicant := api.Group("")
	applicant.Use(middleware.RequireRole(domain.RoleApplicant))

	recruiter := api.Group("")
	recruiter.Use(middleware.RequireRole(domain.RoleRecruiter))

	{
		NewProfileHandler(api, deps.ProfileUC)
		NewJobHandler(api, recruiter, deps.JobUC)
		NewApplicationHandler(api, applicant, recruiter, deps.ApplicationUC)
		NewRatingHandler(api, deps.RatingUC)
	}

	upload := r.Group("/upload")
	upload.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	upload.Use(middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(window)))
	NewUploadHandler(upload, deps.Store, deps.Config.MaxUploadBytes)

	return r
}
