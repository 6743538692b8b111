package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/transparify/transparify_backend/internal/core/ports/gateways"
	"github.com/transparify/transparify_backend/internal/core/services"
	"github.com/transparify/transparify_backend/internal/handlers"
	"github.com/transparify/transparify_backend/internal/middleware"
	"github.com/transparify/transparify_backend/internal/platform/artifacts"
	"github.com/transparify/transparify_backend/internal/platform/config"
	"github.com/transparify/transparify_backend/internal/platform/payment"
	"github.com/transparify/transparify_backend/internal/platform/renderer"
	"github.com/transparify/transparify_backend/internal/repositories/database/pgsql"
	"github.com/transparify/transparify_backend/internal/utils"
	"github.com/transparify/transparify_backend/pkg/database"
)

const orgDisplayName = "TransparifyNGO"

// @title Transparify Backend API
// @version 1.0
// @description Donation management and transparency platform backend.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	artifactStore, err := newArtifactStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize receipt artifact store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	paymentGateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayWebhookSecret)

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos, services.GatewayProvider{
		Payment:       paymentGateway,
		Renderer:      renderer.NewPDFRenderer(orgDisplayName),
		ArtifactStore: artifactStore,
	}, cfg.APIBaseURL)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(middleware.PosthogMiddleware(posthogClient))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Locally stored receipt PDFs are served straight from disk
	if cfg.ReceiptStore == "local" {
		r.Static("/receipts", cfg.ReceiptDir)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, paymentGateway)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending schema migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// newArtifactStore picks the receipt artifact backend from configuration.
func newArtifactStore(cfg *config.Config) (gateways.ReceiptArtifactStore, error) {
	if cfg.ReceiptStore == "s3" {
		return artifacts.NewS3Store(context.Background(), cfg.ReceiptS3Bucket, cfg.ReceiptS3Region)
	}
	return artifacts.NewLocalStore(cfg.ReceiptDir, cfg.ReceiptBaseURL)
}
