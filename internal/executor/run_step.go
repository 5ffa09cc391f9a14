package executor

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/sumgridgo/internal/config"
	"github.com/vk/sumgridgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// runStep resolves a step's runner definition and handler, decodes its
// arguments, and invokes the Go handler with its dependencies and input
// passed in directly.
func (e *Executor) runStep(ctx context.Context, step *config.Step) (cty.Value, error) {
	instanceID := fmt.Sprintf("step.%s.%s", step.RunnerType, step.Name)
	logger := ctxlog.FromContext(ctx).With("step", instanceID)
	logger.Info("▶️ Starting step")

	runnerDef, ok := e.registry.DefinitionRegistry[step.RunnerType]
	if !ok {
		return cty.NilVal, fmt.Errorf("unknown runner type '%s'", step.RunnerType)
	}
	if runnerDef.Lifecycle == nil || runnerDef.Lifecycle.OnRun == "" {
		return cty.NilVal, fmt.Errorf("runner '%s' declares no on_run handler", step.RunnerType)
	}
	handlerName := runnerDef.Lifecycle.OnRun
	registeredHandler, ok := e.registry.HandlerRegistry[handlerName]
	if !ok {
		return cty.NilVal, fmt.Errorf("handler '%s' not registered", handlerName)
	}

	evalCtx := e.buildEvalContext(ctx)

	inputStruct := registeredHandler.NewInput()
	if inputStruct != nil {
		err := e.converter.DecodeBody(ctx, inputStruct, step.Arguments, runnerDef.Inputs, evalCtx)
		if err != nil {
			return cty.NilVal, fmt.Errorf("failed to decode arguments for %s: %w", instanceID, err)
		}
	}
	logger.Debug("Step input decoded.", "data", formatValueForLogs(inputStruct))

	depsStruct := registeredHandler.NewDeps()

	logger.Debug("Calling step run handler.", "handler", handlerName)
	handlerFunc := reflect.ValueOf(registeredHandler.Fn)
	callArgs := []reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(depsStruct)}

	if inputStruct == nil {
		inputType := handlerFunc.Type().In(2)
		callArgs = append(callArgs, reflect.Zero(inputType))
	} else {
		callArgs = append(callArgs, reflect.ValueOf(inputStruct))
	}

	results := handlerFunc.Call(callArgs)
	nativeOutput, errResult := results[0].Interface(), results[1].Interface()
	if errResult != nil {
		return cty.NilVal, fmt.Errorf("step %s failed: %w", instanceID, errResult.(error))
	}

	ctyOutput, err := e.converter.ToCtyValue(nativeOutput)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to convert handler output to cty.Value for %s: %w", instanceID, err)
	}

	logger.Info("✅ Finished step")
	return ctyOutput, nil
}

// buildEvalContext creates the HCL evaluation context holding the outputs of
// all previously completed steps, addressable as
// step.<runner_type>.<instance_name>.output.
func (e *Executor) buildEvalContext(ctx context.Context) *hcl.EvalContext {
	logger := ctxlog.FromContext(ctx)

	finalStepOutputs := make(map[string]cty.Value)
	for runnerType, instances := range e.outputs {
		finalStepOutputs[runnerType] = cty.ObjectVal(instances)
	}

	vars := map[string]cty.Value{
		"step": cty.ObjectVal(finalStepOutputs),
	}
	logger.Debug("Built HCL evaluation context.", "runner_types", len(finalStepOutputs))
	return &hcl.EvalContext{Variables: vars}
}
