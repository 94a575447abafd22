package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hackmate-backend/config"
	_ "go-hackmate-backend/docs" // Important for Swagger
	v1 "go-hackmate-backend/internal/delivery/http/v1"
	"go-hackmate-backend/internal/repository/postgres"
	"go-hackmate-backend/internal/usecase"
	"go-hackmate-backend/pkg/auth"
	"go-hackmate-backend/pkg/database"
	"go-hackmate-backend/pkg/logger"
	"go-hackmate-backend/pkg/redis"
	"go-hackmate-backend/pkg/storage"
)

// @title           HackMate API
// @version         1.0
// @description     Hackathon team matching and analytics backend.
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
	logger.Log.Info("Starting hackmate backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional: rate limiting and trend caching degrade without it)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, continuing without cache", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup Avatar Storage
	store, err := storage.NewClient(context.Background(), storage.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Log.Error("Failed to configure avatar storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	teamRepo := postgres.NewTeamRepository(dbPool)
	taskRepo := postgres.NewTaskRepository(dbPool)
	hackathonRepo := postgres.NewHackathonRepository(dbPool)

	// 7. Setup UseCases
	profileUC := usecase.NewProfileUsecase(profileRepo, store)
	teamUC := usecase.NewTeamUsecase(teamRepo, hackathonRepo)
	taskUC := usecase.NewTaskUsecase(taskRepo, teamRepo)
	hackathonUC := usecase.NewHackathonUsecase(hackathonRepo)
	matchingUC := usecase.NewMatchingUsecase(profileRepo, teamRepo, hackathonRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(
		profileRepo, teamRepo, taskRepo, hackathonRepo,
		time.Duration(cfg.TrendingCacheTTLSeconds)*time.Second,
	)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Auth Provider (JWKS)
	jwksProvider := auth.NewProvider(cfg.AuthJWKSURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:    profileUC,
		TeamUC:       teamUC,
		TaskUC:       taskUC,
		HackathonUC:  hackathonUC,
		MatchingUC:   matchingUC,
		AnalyticsUC:  analyticsUC,
		HealthUC:     healthUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
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
