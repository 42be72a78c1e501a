// Package bootstrap wires configuration, the database, and the HTTP
// layer together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/messmate/messmate/internal/app/controllers"
	appMigrations "github.com/messmate/messmate/internal/app/migrations"
	appRepos "github.com/messmate/messmate/internal/app/repositories"
	appRoutes "github.com/messmate/messmate/internal/app/routes"
	appServices "github.com/messmate/messmate/internal/app/services"
	"github.com/messmate/messmate/internal/config"
	"github.com/messmate/messmate/internal/db"
	appMiddleware "github.com/messmate/messmate/internal/middleware"
	pkgAuth "github.com/messmate/messmate/internal/pkg/auth"
	"github.com/messmate/messmate/internal/pkg/helpers"
	"github.com/messmate/messmate/internal/pkg/logger"
	"github.com/messmate/messmate/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	AuthService      appServices.AuthService
	ContactService   appServices.ContactService
	FeedbackService  appServices.FeedbackService
	MenuService      appServices.MenuService
	BookingService   appServices.BookingService
	ComplaintService appServices.ComplaintService
	StudentService   appServices.StudentService
	StatsService     appServices.StatsService

	AuthController      *appControllers.AuthController
	ContactController   *appControllers.ContactController
	FeedbackController  *appControllers.FeedbackController
	MenuController      *appControllers.MenuController
	BookingController   *appControllers.BookingController
	ComplaintController *appControllers.ComplaintController
	StudentController   *appControllers.StudentController
	StatsController     *appControllers.StatsController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// Optional .env file for local development.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations,
// and seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), database.Pool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.StudentRepository, deps.JWTService, lgr)
	deps.ContactService = appServices.NewContactService(deps.Repos.ContactRepository)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository)
	deps.MenuService = appServices.NewMenuService(deps.Repos.MenuRepository)
	deps.BookingService = appServices.NewBookingService(deps.Repos.BookingRepository)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.ComplaintRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.StudentRepository,
		deps.Repos.BookingRepository,
		deps.Repos.FeedbackRepository,
		deps.Repos.ComplaintRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ContactController = appControllers.NewContactController(deps.ContactService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)
	deps.MenuController = appControllers.NewMenuController(deps.MenuService)
	deps.BookingController = appControllers.NewBookingController(deps.BookingService)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ContactController,
		deps.FeedbackController,
		deps.MenuController,
		deps.BookingController,
		deps.ComplaintController,
		deps.StudentController,
		deps.StatsController,
		deps.AuthMiddleware,
	)

	return router
}
