package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sumgridgo/internal/config"
	"github.com/vk/sumgridgo/internal/ctxlog"
	"github.com/vk/sumgridgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	loader    config.Loader
	modules   []registry.Module
	registry  *registry.Registry
	config    *config.Model
	converter config.Converter
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// When no modules are passed, the compiled-in core modules are used, wired
// to print to outW.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules(outW)
	}

	a := &App{
		outW:    outW,
		logger:  logger,
		loader:  loader,
		modules: modules,
	}

	// Load all configuration into the format-agnostic model first.
	if err := a.load(ctx, appConfig); err != nil {
		// A failure to load config is a fatal startup error.
		panic(err)
	}

	return a
}

// load runs the full load cycle: read configuration, register modules,
// populate definitions, and validate parity. It is reused by watch mode to
// pick up configuration changes, so it must leave the App untouched on error.
func (a *App) load(ctx context.Context, appConfig *Config) error {
	logger := ctxlog.FromContext(ctx)

	// Merge all configuration paths into a single collection for the loader.
	var configPaths []string
	if appConfig.GridPath != "" {
		configPaths = append(configPaths, appConfig.GridPath)
	}
	if appConfig.ModulesPath != "" {
		configPaths = append(configPaths, appConfig.ModulesPath)
	}

	cfgModel, converter, err := a.loader.Load(ctx, configPaths...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	// Create and populate a fresh registry with Go handlers.
	reg := registry.New()
	for _, mod := range a.modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(a.modules))

	// Populate the registry's definitions from the loaded config model.
	reg.PopulateDefinitionsFromModel(cfgModel)
	logger.Debug("Registry definitions populated from config model.")

	// Validate the integrity of the registry.
	if err := reg.ValidateRegistry(ctx); err != nil {
		return err
	}
	logger.Debug("Registry validation passed.")

	a.registry = reg
	a.config = cfgModel
	a.converter = converter
	return nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
