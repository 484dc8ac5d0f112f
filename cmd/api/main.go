package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ariven/dermalens-v2/backend/config"
	"github.com/ariven/dermalens-v2/backend/internal/database"
	"github.com/ariven/dermalens-v2/backend/internal/engine"
	"github.com/ariven/dermalens-v2/backend/internal/middleware"
	"github.com/ariven/dermalens-v2/backend/internal/server"
	"github.com/ariven/dermalens-v2/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	rdb, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	store, err := engine.DefaultReferenceDataStore()
	if err != nil {
		logger.Fatal("reference data failed integrity checks", zap.Error(err))
	}

	ctx := context.Background()
	s3Config, err := config.NewS3Config(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize S3", zap.Error(err))
	}

	profiles := service.NewProfileService(db)
	deps := server.Deps{
		Auth:            service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpiryHours),
		Profiles:        profiles,
		Products:        service.NewProductService(db),
		Scans:           service.NewScanService(db, rdb, profiles, store, logger),
		Recommendations: service.NewRecommendationService(db, profiles, store, logger),
		Images:          service.NewImageService(s3Config, logger),
		RateLimiter:     middleware.NewScanCreationRateLimiter(rdb),
	}

	srv := server.New(cfg, db, deps, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
