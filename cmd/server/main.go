package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/tracklight/wellbeing/internal/cache"
	"github.com/tracklight/wellbeing/internal/config"
	"github.com/tracklight/wellbeing/internal/database"
	"github.com/tracklight/wellbeing/internal/handlers"
	"github.com/tracklight/wellbeing/internal/middleware"
	"github.com/tracklight/wellbeing/internal/repositories"
	"github.com/tracklight/wellbeing/internal/services"
)

func main() {
	ctx := context.Background()

	godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Apply migrations before opening the pool; the uniqueness
	// indexes are load-bearing.
	if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	// Initialize database connections
	postgresPool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create postgres pool")
	}
	defer postgresPool.Close()

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create redis client")
	}
	defer redisClient.Close()

	// Repositories
	accountRepo := repositories.NewPostgresAccountRepository(postgresPool)
	wellBeingRepo := repositories.NewPostgresWellBeingRepository(postgresPool)
	logRepo := repositories.NewPostgresLogRepository(postgresPool)

	// Services
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := services.NewAuthService(accountRepo, tokens, cfg.BcryptCost)
	wellBeingService := services.NewWellBeingService(wellBeingRepo)
	provisioning := services.NewProvisioningService(accountRepo, wellBeingService, tokens, cfg.BcryptCost, logger)
	dayCounts := cache.NewRedisDayCountCache(redisClient)
	logService := services.NewLogService(logRepo, wellBeingRepo, dayCounts)

	// HTTP
	userHandler := handlers.NewUserHandler(provisioning, authService)
	wellBeingHandler := handlers.NewWellBeingHandler(wellBeingService)
	logHandler := handlers.NewLogHandler(logService)
	guard := middleware.Auth(tokens)

	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.Route("/users", func(r chi.Router) {
		userHandler.Routes(r, guard)
	})
	router.Route("/wellbeings", func(r chi.Router) {
		wellBeingHandler.Routes(r, guard)
	})
	router.Route("/logs", func(r chi.Router) {
		logHandler.Routes(r, guard)
	})

	// Start Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router,
	}

	// graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info().Msg("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Info().Str("port", cfg.ServerPort).Msg("starting server")
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}

	logger.Info().Msg("server stopped gracefully")
}
