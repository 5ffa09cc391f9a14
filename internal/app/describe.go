package app

import (
	"context"
	"fmt"

	"github.com/vk/sumgridgo/internal/ctxlog"
	"github.com/vk/sumgridgo/internal/describe"
)

// describeRunner prints the manifest contract of a single runner to the
// app's output writer instead of executing the grid.
func (a *App) describeRunner(ctx context.Context, runnerType string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Describing runner.", "type", runnerType)

	def, ok := a.registry.DefinitionRegistry[runnerType]
	if !ok {
		return fmt.Errorf("unknown runner type '%s'", runnerType)
	}

	return describe.Render(a.outW, def)
}
