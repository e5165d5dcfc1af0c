package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/coursehub/catalog/internal/app/controllers"
	appMigrations "github.com/coursehub/catalog/internal/app/migrations"
	appRepos "github.com/coursehub/catalog/internal/app/repositories"
	appRoutes "github.com/coursehub/catalog/internal/app/routes"
	appServices "github.com/coursehub/catalog/internal/app/services"
	"github.com/coursehub/catalog/internal/config"
	"github.com/coursehub/catalog/internal/db"
	appMiddleware "github.com/coursehub/catalog/internal/middleware"
	pkgAuth "github.com/coursehub/catalog/internal/pkg/auth"
	"github.com/coursehub/catalog/internal/pkg/filestorage"
	"github.com/coursehub/catalog/internal/pkg/helpers"
	"github.com/coursehub/catalog/internal/pkg/logger"
	"github.com/coursehub/catalog/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	CourseCache *appRepos.CachedCourseLookup
	ObjectStore filestorage.ObjectStore
	Metrics     *prometheus.Registry

	CourseService   *appServices.CourseService
	ResourceService *appServices.ResourceService
	LinkService     *appServices.LinkService

	Controllers appRoutes.Controllers
	// UploadsDir is set when objects are written to local disk and served by the API
	UploadsDir string
	Logger     zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logCfg := logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format)
	logCfg.Service = "coursehub-catalog"
	logger.Configure(logCfg)

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logCfg.Level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	if len(cfg.EnvOverrides) > 0 {
		lgr.Info().Strs("keys", cfg.EnvOverrides).Msg("Configuration overridden from environment")
	}
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool without touching the schema.
func ConnectDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// RunMigrations applies every pending migration in the configured directory.
func RunMigrations(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(dbPool).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SeedCatalog loads the course catalog file into an empty courses table.
func SeedCatalog(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (int64, error) {
	courses := appRepos.NewCourseRepository(dbPool)
	inserted, err := seed.SeedCoursesIfEmpty(ctx, courses, cfg.Catalog.CoursesJSONPath, lgr)
	if err != nil {
		return 0, fmt.Errorf("failed to seed course catalog: %w", err)
	}
	return inserted, nil
}

// SetupDatabase connects, migrates and, when enabled, seeds the course catalog.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	dbPool, err := ConnectDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, cfg, dbPool, lgr); err != nil {
		dbPool.Close()
		return nil, err
	}

	if cfg.Catalog.SeedOnStartup {
		if _, err := SeedCatalog(ctx, cfg, dbPool, lgr); err != nil {
			// The API still serves whatever the table already holds
			lgr.Error().Err(err).Msg("Failed to seed course catalog, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildObjectStore picks the object store driver from the storage section.
// The returned directory is non-empty when uploaded files must be served by the API.
func BuildObjectStore(cfg *config.Config, lgr zerolog.Logger) (filestorage.ObjectStore, string, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "local":
		baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
		local, err := filestorage.NewLocalStorage(cfg.Storage.LocalPath, baseURL)
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize local object store: %w", err)
		}
		lgr.Info().Str("path", local.BasePath()).Msg("Using local object store")
		return local, local.BasePath(), nil
	default:
		provider := pkgAuth.NewGoogleTokenProvider(cfg.Auth.Scope, cfg.Auth.CredentialsFile)
		gcs, err := filestorage.NewGCSStorage(filestorage.GCSConfig{
			Bucket:        cfg.Storage.Bucket,
			UploadBaseURL: cfg.Storage.UploadBaseURL,
			PublicBaseURL: cfg.Storage.PublicBaseURL,
			Timeout:       helpers.ParseDuration(cfg.Storage.UploadTimeout, 2*time.Minute),
		}, pkgAuth.NewTokenCache(provider), nil)
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize gcs object store: %w", err)
		}
		lgr.Info().Str("bucket", cfg.Storage.Bucket).Msg("Using gcs object store")
		return gcs, "", nil
	}
}

// newMetricsRegistry returns a registry with the runtime collectors registered.
func newMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.CourseCache, err = appRepos.NewCachedCourseLookup(deps.Repos.CourseRepository, cfg.Cache.CourseCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize course cache: %w", err)
	}

	store, uploadsDir, err := BuildObjectStore(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize object store")
		return nil, err
	}
	deps.UploadsDir = uploadsDir

	if cfg.Metrics.Enabled {
		deps.Metrics = newMetricsRegistry()
		observer, err := filestorage.NewPrometheusObserver(cfg.Metrics.Namespace, deps.Metrics)
		if err != nil {
			return nil, fmt.Errorf("failed to register object store metrics: %w", err)
		}
		store = filestorage.Instrument(store, observer)
	}
	deps.ObjectStore = store

	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.CourseCache,
		deps.Repos.ResourceRepository,
		deps.Repos.LinkRepository,
	)
	deps.ResourceService = appServices.NewResourceService(
		deps.Repos.ResourceRepository,
		deps.CourseCache,
		deps.ObjectStore,
		cfg.Storage.MaxParallelUploads,
	)
	deps.LinkService = appServices.NewLinkService(deps.Repos.LinkRepository)

	deps.Controllers = appRoutes.Controllers{
		Course:   appControllers.NewCourseController(deps.CourseService),
		Resource: appControllers.NewResourceController(deps.ResourceService),
		Link:     appControllers.NewLinkController(deps.LinkService),
		Health:   appControllers.NewHealthController(dbPool),
	}

	return deps, nil
}

// corsConfig builds the CORS policy from the allowed origins setting.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}

	origins := cfg.AllowedOriginList()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return corsCfg
}

// RequestTimeout is the deadline of an ordinary API request
func RequestTimeout(cfg *config.Config) time.Duration {
	return helpers.ParseDuration(cfg.Server.RequestTimeout, time.Minute)
}

// UploadRequestTimeout is the deadline of the upload route: the object store
// transfers followed by the row inserts
func UploadRequestTimeout(cfg *config.Config) time.Duration {
	return helpers.ParseDuration(cfg.Storage.UploadTimeout, 2*time.Minute) + RequestTimeout(cfg)
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
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(),
		cors.New(corsConfig(cfg)),
		appMiddleware.RouteTimeouts(RequestTimeout(cfg), map[string]time.Duration{
			appRoutes.UploadResourcePath: UploadRequestTimeout(cfg),
		}),
	)

	opts := appRoutes.Options{UploadsDir: deps.UploadsDir}
	if deps.Metrics != nil {
		opts.MetricsHandler = promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})
	}

	appRoutes.SetupRouter(router, deps.Controllers, opts)
	appRoutes.SetupSwagger(router)

	return router
}
