package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/edudham/edudham-api/api/swagger"
	"github.com/edudham/edudham-api/internal/handler"
	"github.com/edudham/edudham-api/internal/repository"
	"github.com/edudham/edudham-api/internal/router"
	"github.com/edudham/edudham-api/internal/service"
	"github.com/edudham/edudham-api/pkg/cache"
	"github.com/edudham/edudham-api/pkg/config"
	"github.com/edudham/edudham-api/pkg/database"
	"github.com/edudham/edudham-api/pkg/logger"
	"github.com/edudham/edudham-api/pkg/storage"
)

// @title Edu Dham API
// @version 1.0.0
// @description University directory and lead management API
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, homepage cache disabled", "error", err)
		redisClient = nil
	}

	store, err := storage.NewLocalStorage(cfg.Uploads.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare uploads directory", "error", err)
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	universityRepo := repository.NewUniversityRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	homepageRepo := repository.NewHomepageRepository(db)

	authService := service.NewAuthService(userRepo, otpRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		MasterEmail: cfg.OTP.MasterEmail,
		OTPExpiry:   cfg.OTP.Expiry,
	})
	universityService := service.NewUniversityService(universityRepo, categoryRepo, redisClient, cfg.Homepage.CacheTTL, validate, logr, metrics)
	applicationService := service.NewApplicationService(applicationRepo, universityRepo, validate, logr, metrics)
	categoryService := service.NewCategoryService(categoryRepo, validate, logr)
	userService := service.NewUserService(userRepo, universityRepo, validate, logr)
	statsService := service.NewStatsService(universityRepo, applicationRepo, userRepo, logr)
	homepageService := service.NewHomepageService(homepageRepo, redisClient, cfg.Homepage.CacheTTL, validate, logr, metrics)
	mediaService := service.NewMediaService(store, cfg.Uploads, logr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.SeedAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		logr.Warn("failed to seed admin account", zap.Error(err))
	}
	cancel()

	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		University:  handler.NewUniversityHandler(universityService, mediaService),
		Application: handler.NewApplicationHandler(applicationService),
		Category:    handler.NewCategoryHandler(categoryService),
		Admin:       handler.NewAdminHandler(statsService, userService),
		Homepage:    handler.NewHomepageHandler(homepageService),
		Media:       handler.NewMediaHandler(mediaService),
		Metrics:     handler.NewMetricsHandler(metrics),
		UploadsDir:  store.Dir(),
	}

	r := router.New(cfg, logr, authService, metrics, handlers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
