// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/infra/config"
	"github.com/runoshun/kanban/internal/infra/idgen"
	"github.com/runoshun/kanban/internal/infra/logging"
	"github.com/runoshun/kanban/internal/infra/script"
	"github.com/runoshun/kanban/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory the board was opened from
	DataDir string // Path to the local .kanban directory
}

// newConfig creates a new Config for the given working directory.
func newConfig(dir string) Config {
	return Config{
		WorkDir: dir,
		DataDir: domain.LocalDataDir(dir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	IDs           domain.IDGenerator
	BoardLogger   domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Codec         domain.ScriptCodec

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container for the board opened from dir.
func New(dir string) (*Container, error) {
	cfg := newConfig(dir)

	configLoader := config.NewLoader(cfg.DataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := logging.ParseLevel(appConfig.Log.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	// File logging only once the local data directory has been created
	// (e.g. by "kanban config init").
	logDir := ""
	if info, statErr := os.Stat(cfg.DataDir); statErr == nil && info.IsDir() {
		logDir = cfg.DataDir
	}

	return &Container{
		IDs:           idgen.UUID{},
		BoardLogger:   logging.New(logDir, level),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.DataDir),
		Codec:         script.NewCodec(),
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, ids domain.IDGenerator, loader domain.ConfigLoader, manager domain.ConfigManager, logger *slog.Logger) *Container {
	appConfig, err := loader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		IDs:           ids,
		BoardLogger:   domain.NopLogger{},
		ConfigLoader:  loader,
		ConfigManager: manager,
		Codec:         script.NewCodec(),
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.BoardLogger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// BoardOptions returns the session options derived from the loaded config.
func (c *Container) BoardOptions() usecase.BoardOptions {
	return usecase.BoardOptionsFromConfig(c.AppConfig)
}

// UseCase factory methods

// NewBoardSession returns a new session holding an empty board.
func (c *Container) NewBoardSession() *usecase.BoardSession {
	return usecase.NewBoardSession(c.IDs, c.BoardLogger, c.BoardOptions())
}

// ReplayScriptUseCase returns a new ReplayScript use case.
func (c *Container) ReplayScriptUseCase() *usecase.ReplayScript {
	return usecase.NewReplayScript(c.Codec, c.IDs, c.BoardLogger, c.BoardOptions())
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
