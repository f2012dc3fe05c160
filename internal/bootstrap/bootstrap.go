package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/hoangle/english-center/internal/app/controllers"
	appMigrations "github.com/hoangle/english-center/internal/app/migrations"
	appRepos "github.com/hoangle/english-center/internal/app/repositories"
	appRoutes "github.com/hoangle/english-center/internal/app/routes"
	appServices "github.com/hoangle/english-center/internal/app/services"
	"github.com/hoangle/english-center/internal/config"
	"github.com/hoangle/english-center/internal/db"
	appMiddleware "github.com/hoangle/english-center/internal/middleware"
	pkgAuth "github.com/hoangle/english-center/internal/pkg/auth"
	"github.com/hoangle/english-center/internal/pkg/logger"
	"github.com/hoangle/english-center/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ScheduleService      *appServices.ScheduleService
	ClassroomService     *appServices.ClassroomService
	EnrollmentService    *appServices.EnrollmentService
	TimetableService     *appServices.TimetableService
	RoomService          *appServices.RoomService
	DirectoryService     *appServices.DirectoryService
	ClassroomController  *appControllers.ClassroomController
	ScheduleController   *appControllers.ScheduleController
	EnrollmentController *appControllers.EnrollmentController
	TimetableController  *appControllers.TimetableController
	RoomController       *appControllers.RoomController
	DirectoryController  *appControllers.DirectoryController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
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

// SetupDatabase establishes the database connection and runs migrations.
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
	migrator := appMigrations.NewMigrator(database.Pool)

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

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.ScheduleService = appServices.NewScheduleService(database, deps.Repos.ScheduleRepository, deps.Repos.ClassroomRepository, deps.Repos.TeacherRepository, deps.Repos.RoomRepository)
	deps.ClassroomService = appServices.NewClassroomService(database, deps.Repos.ClassroomRepository, deps.Repos.TeacherRepository, deps.Repos.RoomRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(database, deps.Repos.EnrollmentRepository, deps.Repos.ClassroomRepository, deps.Repos.StudentRepository)
	deps.TimetableService = appServices.NewTimetableService(deps.ScheduleService)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository)
	deps.DirectoryService = appServices.NewDirectoryService(deps.Repos.TeacherRepository, deps.Repos.StudentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ClassroomController = appControllers.NewClassroomController(deps.ClassroomService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.TimetableController = appControllers.NewTimetableController(deps.TimetableService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.DirectoryController = appControllers.NewDirectoryController(deps.DirectoryService, deps.EnrollmentService)

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

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.ClassroomController,
		deps.ScheduleController,
		deps.EnrollmentController,
		deps.TimetableController,
		deps.RoomController,
		deps.DirectoryController,
		deps.AuthMiddleware,
	)

	return router
}
