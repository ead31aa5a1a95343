package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gigit-app/gigit/backend/internal/api/handlers"
	"github.com/gigit-app/gigit/backend/internal/auth"
	"github.com/gigit-app/gigit/backend/internal/config"
	"github.com/gigit-app/gigit/backend/internal/database"
	"github.com/gigit-app/gigit/backend/internal/health"
	"github.com/gigit-app/gigit/backend/internal/migration"
	"github.com/gigit-app/gigit/backend/internal/repository"
	"github.com/gigit-app/gigit/backend/internal/routes"
	"github.com/gigit-app/gigit/backend/internal/search"
	"github.com/gigit-app/gigit/backend/internal/services"
	"github.com/gigit-app/gigit/backend/pkg/utils"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		utils.GetLogger().WithError(err).Fatal("Failed to load configuration")
	}

	logger := utils.GetLogger()
	logger.WithField("environment", cfg.Server.Environment).Info("Starting gigit API server")

	if err := cfg.ValidateAuth(); err != nil {
		logger.WithError(err).Fatal("Invalid auth configuration")
	}

	dbManager, err := database.NewManager(&database.Config{
		DatabaseURL: cfg.Database.URL,
		RedisURL:    cfg.Redis.URL,
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to databases")
	}
	defer dbManager.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	if err := migration.NewRunner(dbManager, logger).RunMigrations(migrationsPath); err != nil {
		logger.WithError(err).Fatal("Database migration failed")
	}

	repoManager := repository.NewRepositoryManager(dbManager.DB)
	cache := database.NewCache(dbManager.Redis, logger)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	reviewService := services.NewReviewService(repoManager, cache, logger)
	searchService := services.NewSearchService(repoManager, reviewService, cache, logger)

	// Warms the catalog with an unfiltered search on startup.
	session := search.NewSession(searchService, logger)

	healthChecker := health.NewHealthChecker(dbManager, repoManager.SystemHealth, logger)
	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	go healthChecker.PeriodicHealthCheck(healthCtx, 30*time.Second)

	router := routes.SetupRoutes(cfg, verifier, routes.Handlers{
		Search:  handlers.NewSearchHandler(searchService, session, repoManager, logger),
		Reviews: handlers.NewReviewsHandler(reviewService, logger),
		Health:  handlers.NewHealthHandler(healthChecker, logger),
		Admin:   handlers.NewAdminHandler(repoManager, cache, logger),
	}, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")
	stopHealth()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
