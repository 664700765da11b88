package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/subahan00/job-portal/config"
	v1 "github.com/subahan00/job-portal/internal/delivery/http/v1"
	"github.com/subahan00/job-portal/internal/repository/postgres"
	"github.com/subahan00/job-portal/internal/usecase"
	"github.com/subahan00/job-portal/pkg/audit"
	"github.com/subahan00/job-portal/pkg/database"
	"github.com/subahan00/job-portal/pkg/logger"
	"github.com/subahan00/job-portal/pkg/redis"
	"github.com/subahan00/job-portal/pkg/storage"
	"github.com/subahan00/job-portal/pkg/token"
)

// @title           Job Portal API
// @version         1.0
// @description     Job board backend: postings, applications, ratings and uploads.
// @host            localhost:4444
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)
	auditLog := audit.Init("job-portal")
	defer auditLog.Sync()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.MigrateOnStart {
		if err := database.ApplySchema(context.Background(), dbPool, postgres.Schema); err != nil {
			logger.Log.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
		}
	}

	// 5. Setup Upload Storage
	var store storage.Store
	switch cfg.StorageDriver {
	case "s3":
		store, err = storage.NewS3Store(context.Background(), storage.S3Config{
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.S3PublicURL,
		})
	default:
		store, err = storage.NewDiskStore(cfg.UploadDir)
	}
	if err != nil {
		logger.Log.Error("Failed to set up upload storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	applicantRepo := postgres.NewApplicantProfileRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	ratingRepo := postgres.NewRatingRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	authUC := usecase.NewAuthUsecase(userRepo, applicantRepo, recruiterRepo, tokens)
	profileUC := usecase.NewProfileUsecase(userRepo, applicantRepo, recruiterRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, cfg.MaxActiveApplications)
	ratingUC := usecase.NewRatingUsecase(ratingRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		RatingUC:      ratingUC,
		Tokens:        tokens,
		Store:         store,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
