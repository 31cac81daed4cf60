// Package cli wires the kitematic dependencies used by CLI commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bessdsv/kitematic/internal/application/usecase"
	"github.com/bessdsv/kitematic/internal/cli/styles"
	"github.com/bessdsv/kitematic/internal/domain/build"
	"github.com/bessdsv/kitematic/internal/domain/repository"
	"github.com/bessdsv/kitematic/internal/infrastructure/config"
	"github.com/bessdsv/kitematic/internal/infrastructure/persistence/sqlite"
	"github.com/bessdsv/kitematic/internal/logging"
)

// Options tune how the App is built for one command.
type Options struct {
	// Interactive commands own the terminal, so their logs go to a file.
	Interactive bool
	// LogStderr also writes logs to stderr.
	LogStderr bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	db            *sqlite.LazyDB
	Containers    repository.ContainerRepository

	// Use cases
	LinksUC   *usecase.ManageLinksUseCase
	InspectUC *usecase.InspectContainerUseCase
	ImportUC  *usecase.ImportContainersUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg := loadConfig()

	theme := styles.NewTheme(cfg)

	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	logDir := cfg.Logging.LogDir
	if logDir == "" {
		logDir, _ = config.GetLogDir()
	}
	logger, logCleanup, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:       opts.Interactive || cfg.Logging.EnableFileLog,
		Dir:           logDir,
		WriteToStderr: opts.LogStderr && !opts.Interactive,
	})
	if err != nil && !opts.Interactive {
		logger = logging.New(logCfg)
		logger.Warn().Err(err).Msg("file logging unavailable")
	}
	ctx := logging.WithContext(context.Background(), logger)

	dbFile := cfg.Database.Path
	if dbFile == "" {
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			logCleanup()
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	// Opened on first repository call; version and config never touch it
	db := sqlite.NewLazyDB(dbFile)
	containerRepo := sqlite.NewLazyContainerRepository(db)

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         theme,
		db:            db,
		Containers:    containerRepo,
		LinksUC:       usecase.NewManageLinksUseCase(containerRepo),
		InspectUC:     usecase.NewInspectContainerUseCase(containerRepo, cfg.Docker.Host),
		ImportUC:      usecase.NewImportContainersUseCase(containerRepo),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. The manager is
// nil when the config directory cannot be resolved.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		// Return default config if loading fails
		return mgr, config.DefaultConfig()
	}

	return mgr, mgr.Get()
}
