package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"bilhete-backend/internal/config"
	"bilhete-backend/internal/database"
	"bilhete-backend/internal/handlers"
	"bilhete-backend/internal/repository"
	"bilhete-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ConfigureLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// A store that is down at boot must not keep the listener from starting.
	schemaCtx, cancelSchema := context.WithTimeout(ctx, 10*time.Second)
	if err := db.EnsureSchema(schemaCtx); err != nil {
		log.WithError(err).Error("Failed to ensure database schema")
	} else {
		log.Info("Database schema ready")
	}
	cancelSchema()

	hasher, err := services.NewPasswordHasher(cfg.PasswordHasher)
	if err != nil {
		log.Fatalf("Failed to configure password hasher: %v", err)
	}
	if cfg.PasswordHasher != services.HasherBcrypt {
		log.Warn("Passwords are stored as unsalted SHA-256 digests; set PASSWORD_HASHER=bcrypt to harden")
	}

	footballClient := services.NewFootballClient(services.FootballClientConfig{
		BaseURL: cfg.FootballAPIURL,
		APIKey:  cfg.FootballAPIKey,
		Timeout: cfg.FootballAPITimeout,
	})
	if cfg.FootballAPIKey == "" {
		log.Warn("API_FOOTBALL_KEY is not set; fixture requests will be rejected upstream")
	}

	fixtureService := services.NewFixtureService(footballClient)
	userService := services.NewUserService(repository.NewUserRepository(db), hasher)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(
		handlers.NewFixtureHandler(fixtureService),
		handlers.NewUserHandler(userService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Received shutdown signal, shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
}
