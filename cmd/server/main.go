package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/datanetra/msme-registry/config"
	"github.com/datanetra/msme-registry/internal/app/controller"
	"github.com/datanetra/msme-registry/internal/app/repository"
	"github.com/datanetra/msme-registry/internal/app/service"
	"github.com/datanetra/msme-registry/internal/db"
	"github.com/datanetra/msme-registry/internal/router"
	"github.com/datanetra/msme-registry/internal/scheduler"
	"github.com/datanetra/msme-registry/internal/storage"
	"github.com/datanetra/msme-registry/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting MSME Registry Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"db_driver":   cfg.Database.Driver,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize file storage
	store, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("Failed to initialize upload storage", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	verificationRepo := repository.NewVerificationRepository(db.GetDB())
	businessRepo := repository.NewBusinessRepository(db.GetDB())

	// Initialize services
	userService := service.NewUserService(userRepo)
	verificationService := service.NewVerificationService(verificationRepo, store)
	businessService := service.NewBusinessService(businessRepo)

	// Initialize controllers
	userController := controller.NewUserController(userService)
	verificationController := controller.NewVerificationController(verificationService)
	businessController := controller.NewBusinessController(businessService)
	exportController := controller.NewExportController(userService, verificationService, businessService)

	// Start the orphaned-upload sweeper
	sweeper := scheduler.NewOrphanSweeper(
		verificationRepo,
		store,
		cfg.Sweeper.Schedule,
		cfg.Sweeper.GracePeriod,
	)
	if err := sweeper.Start(); err != nil {
		logger.Fatal("Failed to start orphan sweeper", err)
	}
	defer sweeper.Stop()

	// Setup router
	r := router.NewRouter(
		userController,
		verificationController,
		businessController,
		exportController,
		cfg,
	)
	engine := r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			// Not Fatal: the deferred db.Close/sweeper.Stop still have to run.
			logger.Error("Server stopped unexpectedly", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown after drain timeout", err)
	}
	logger.Info("Server stopped successfully")
}
