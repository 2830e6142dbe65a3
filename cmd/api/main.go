package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hiring-backend/config"
	_ "go-hiring-backend/docs" // Important for Swagger
	v1 "go-hiring-backend/internal/delivery/http/v1"
	"go-hiring-backend/internal/repository/postgres"
	"go-hiring-backend/internal/storage/object"
	pgstore "go-hiring-backend/internal/storage/object/pg"
	s3store "go-hiring-backend/internal/storage/object/s3"
	"go-hiring-backend/internal/storage/staged"
	"go-hiring-backend/internal/usecase"
	"go-hiring-backend/pkg/database"
	"go-hiring-backend/pkg/logger"
	"go-hiring-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Hiring Backend API
// @version         1.0
// @description     Backend for a hiring workflow: accounts, profiles, jobs, applications and file storage.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting hiring backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(context.Background(), cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	companyProfileRepo := postgres.NewCompanyProfileRepository(dbPool)
	candidateProfileRepo := postgres.NewCandidateProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)
	statsRepo := postgres.NewStatsRepository(dbPool)

	// 5. Setup Blob Storage
	stagedStore := staged.New(cfg.UploadDir)

	var objects object.Store
	switch cfg.BlobBackend {
	case "s3":
		s3Store, err := s3store.New(context.Background(), s3store.Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			logger.Log.Error("Failed to configure S3 blob backend", "error", err)
			os.Exit(1)
		}
		objects = s3Store
	default:
		objects = pgstore.New(dbPool)
	}

	// 6. Setup Stats Cache
	cache, err := redis.New(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		logger.Log.Warn("Stats cache disabled", "error", err)
		cache = nil
	}

	// 7. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(accountRepo, validate, cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	profileUC := usecase.NewProfileUsecase(companyProfileRepo, candidateProfileRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, companyProfileRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateProfileRepo)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo)
	blobUC := usecase.NewBlobUsecase(stagedStore, objects, int64(cfg.MaxUploadMB)*1024*1024)
	statsUC := usecase.NewStatsUsecase(statsRepo, cache, time.Duration(cfg.StatsCacheTTLSeconds)*time.Second)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		Config:        cfg,
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		SavedJobUC:    savedJobUC,
		BlobUC:        blobUC,
		StatsUC:       statsUC,
		HealthUC:      healthUC,
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
