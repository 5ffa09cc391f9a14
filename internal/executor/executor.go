package executor

import (
	"context"

	"github.com/vk/sumgridgo/internal/config"
	"github.com/vk/sumgridgo/internal/ctxlog"
	"github.com/vk/sumgridgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Executor runs the steps of a grid strictly in declaration order. Each
// step sees the outputs of every step that completed before it; the first
// failure aborts the run.
type Executor struct {
	grid      *config.Grid
	registry  *registry.Registry
	converter config.Converter

	// outputs accumulates finished step results, keyed by runner type and
	// then instance name. It feeds the HCL evaluation context of later steps.
	outputs map[string]map[string]cty.Value
}

// New creates an executor for a single run over the given grid.
func New(grid *config.Grid, reg *registry.Registry, converter config.Converter) *Executor {
	return &Executor{
		grid:      grid,
		registry:  reg,
		converter: converter,
		outputs:   make(map[string]map[string]cty.Value),
	}
}

// Run executes every step of the grid sequentially. It returns the first
// error encountered, or the context's error if the run was cancelled.
func (e *Executor) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor starting sequential run.", "step_count", len(e.grid.Steps))

	for _, step := range e.grid.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		output, err := e.runStep(ctx, step)
		if err != nil {
			return err
		}
		e.storeOutput(step, output)
	}

	logger.Debug("Executor finished sequential run.")
	return nil
}

// storeOutput records a step's converted output so later steps can reference
// it. Null or absent outputs are skipped; they would otherwise poison the
// evaluation context.
func (e *Executor) storeOutput(step *config.Step, output cty.Value) {
	if output.IsNull() {
		return
	}
	instances, ok := e.outputs[step.RunnerType]
	if !ok {
		instances = make(map[string]cty.Value)
		e.outputs[step.RunnerType] = instances
	}
	instances[step.Name] = cty.ObjectVal(map[string]cty.Value{
		"output": output,
	})
}
