package app

import (
	"context"
	"errors"
	"fmt"
	"learnhub/internal/config"
	"learnhub/internal/content"
	"learnhub/internal/content/courses"
	"learnhub/internal/controller"
	"learnhub/internal/middleware"
	"learnhub/internal/repository"
	"learnhub/internal/service"
	"learnhub/pkg/configwatcher"
	"learnhub/pkg/database"
	"learnhub/pkg/logger"
	"learnhub/pkg/monitoring"
	"learnhub/pkg/security"
	"learnhub/pkg/tracing"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Registry *content.Registry

	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	cancel          context.CancelFunc
}

// Deps are the collaborators the HTTP layer is built from. Background goroutines started
// by the router stop when Context is done; nil means they run for the life of the process.
type Deps struct {
	Context  context.Context
	Config   *config.Config
	DB       *gorm.DB
	Registry *content.Registry
	Storage  *service.StorageService
	Log      *zap.Logger
}

type repositories struct {
	progress *repository.ProgressRepository
	event    *repository.EventRepository
	attempt  *repository.QuizAttemptRepository
}

type services struct {
	course   *service.CourseService
	quiz     *service.QuizService
	progress *service.ProgressService
}

type controllers struct {
	course   *controller.CourseController
	quiz     *controller.QuizController
	progress *controller.ProgressController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// NewRegistry builds the course registry from the compiled-in courses (when enabled)
// followed by the YAML files in the content directory.
func NewRegistry(cfg *config.Config, log *zap.Logger) *content.Registry {
	var sources []content.Source
	if cfg.Content.Builtin {
		sources = append(sources, courses.Builtin())
	}
	if cfg.Content.Dir != "" {
		sources = append(sources, content.Dir(cfg.Content.Dir))
	}
	return content.NewRegistry(log, sources...)
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		progress: repository.NewProgressRepository(db),
		event:    repository.NewEventRepository(db),
		attempt:  repository.NewQuizAttemptRepository(db),
	}
}

func initServices(repos *repositories, d Deps) *services {
	return &services{
		course:   service.NewCourseService(d.Registry, d.Storage),
		quiz:     service.NewQuizService(d.Registry, repos.attempt),
		progress: service.NewProgressService(repos.progress, repos.event),
	}
}

func initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		course:   controller.NewCourseController(s.course),
		quiz:     controller.NewQuizController(s.quiz),
		progress: controller.NewProgressController(s.progress),
		health:   controller.NewHealthController(db),
	}
}

func setupMiddlewares(router *gin.Engine, d Deps) {
	cfg := d.Config

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(d.Log))
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(d.Context, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	router.Use(security.BodyLimit(cfg.Server.MaxBodyBytes))
	router.Use(monitoring.MetricsMiddleware())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}
}

func ginMode(mode string) string {
	switch mode {
	case config.ModeRelease:
		return gin.ReleaseMode
	case config.ModeTest:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// NewRouter assembles the gin engine. It does not touch the network or the filesystem
// beyond the local static directory.
func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Context == nil {
		d.Context = context.Background()
	}
	gin.SetMode(ginMode(d.Config.Server.Mode))

	monitoring.Init()

	repos := initRepositories(d.DB)
	svcs := initServices(repos, d)
	ctrls := initControllers(svcs, d.DB)

	router := gin.New()
	setupMiddlewares(router, d)
	registerRoutes(router, ctrls)

	local := d.Config.Storage.Type == "" || d.Config.Storage.Type == "local"
	if local && d.Config.Storage.PublicPrefix != "" {
		router.Static(d.Config.Storage.PublicPrefix, d.Config.Storage.LocalPath)
	}

	return router
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully", zap.String("mode", cfg.Server.Mode))

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.AutoMigrate() {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	app := &App{Config: cfg, DB: db}
	if cfg.MigrateOnly {
		return app, nil
	}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tracing: %w", err)
		}
		app.tracer = tp
	}

	app.Registry = NewRegistry(cfg, logger.Log)
	app.Registry.Discover(false)

	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel
	app.Router = NewRouter(Deps{
		Context:  ctx,
		Config:   cfg,
		DB:       db,
		Registry: app.Registry,
		Storage:  storage,
		Log:      logger.Log,
	})

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetLevel(newCfg)
	})
	app.RegisterConfigCallback(func(*config.Config) {
		app.Registry.Reload()
	})

	return app, nil
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests for up to 5 seconds.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.Config.Watch && a.Config.File != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.Config.File, logger.Log, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}

// Close stops router background work and releases the tracer and the database pool.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	_ = logger.Log.Sync()
}

