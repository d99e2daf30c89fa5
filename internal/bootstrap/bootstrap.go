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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/lifeway/lms-backend/internal/app/controllers"
	appMigrations "github.com/lifeway/lms-backend/internal/app/migrations"
	appRepos "github.com/lifeway/lms-backend/internal/app/repositories"
	appRoutes "github.com/lifeway/lms-backend/internal/app/routes"
	appServices "github.com/lifeway/lms-backend/internal/app/services"
	"github.com/lifeway/lms-backend/internal/config"
	"github.com/lifeway/lms-backend/internal/db"
	appMiddleware "github.com/lifeway/lms-backend/internal/middleware"
	"github.com/lifeway/lms-backend/internal/pkg/logger"
	"github.com/lifeway/lms-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	CenterService        appServices.CenterService
	StudentService       appServices.StudentService
	CourseService        appServices.CourseService
	SuggestionService    appServices.SuggestionService
	NoticeService        appServices.NoticeService
	PublicService        appServices.PublicService
	AuthController       *appControllers.AuthController
	CenterController     *appControllers.CenterController
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	SuggestionController *appControllers.SuggestionController
	NoticeController     *appControllers.NoticeController
	PublicController     *appControllers.PublicController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AdminRepository,
		deps.Repos.CenterRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	deps.CenterService = appServices.NewCenterService(deps.Repos.CenterRepository, deps.Repos.StudentRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.SuggestionService = appServices.NewSuggestionService(deps.Repos.SuggestionRepository)
	deps.NoticeService = appServices.NewNoticeService(deps.Repos.NoticeRepository)
	deps.PublicService = appServices.NewPublicService(
		deps.Repos.GalleryRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CenterRepository,
		deps.Repos.CourseRepository,
		deps.Repos.SuggestionRepository,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.CenterController = appControllers.NewCenterController(deps.CenterService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.SuggestionController = appControllers.NewSuggestionController(deps.SuggestionService)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService)
	deps.PublicController = appControllers.NewPublicController(deps.PublicService)

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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.Recovery(lgr))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Serve the bundled frontend alongside the API
	if cfg.Server.StaticDir != "" {
		if _, err := os.Stat(cfg.Server.StaticDir); err == nil {
			router.Static("/app", cfg.Server.StaticDir)
		} else {
			lgr.Warn().Str("path", cfg.Server.StaticDir).Msg("Static directory not found, skipping")
		}
	}

	appRoutes.SetupRoutes(router, appRoutes.Controllers{
		Auth:       deps.AuthController,
		Center:     deps.CenterController,
		Student:    deps.StudentController,
		Course:     deps.CourseController,
		Suggestion: deps.SuggestionController,
		Notice:     deps.NoticeController,
		Public:     deps.PublicController,
	})

	return router
}
