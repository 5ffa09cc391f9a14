package app

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/vk/sumgridgo/internal/ctxlog"
	"github.com/vk/sumgridgo/internal/executor"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.DescribeRunner != "" {
		return a.describeRunner(ctx, appConfig.DescribeRunner)
	}

	// Every run gets its own id so interleaved watch-mode runs can be told
	// apart in the logs.
	runID := uuid.Must(uuid.NewV7()).String()
	logger := a.logger.With("run_id", runID)
	ctx = ctxlog.WithLogger(ctx, logger)

	logger.Info("Step handlers registered:", "count", len(a.registry.HandlerRegistry), "keys", reflect.ValueOf(a.registry.HandlerRegistry).MapKeys())

	if a.config.Grid != nil && len(a.config.Grid.Steps) > 0 {
		logger.Debug("Executor starting run.")
		logger.Info("🚀 Starting execution...")
		exec := executor.New(a.config.Grid, a.registry, a.converter)
		if err := exec.Run(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		logger.Info("🏁 Execution finished.")
	} else {
		logger.Warn("No steps found in grid, execution not required.")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
