package sum

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/vk/sumgridgo/internal/ctxlog"
	"github.com/vk/sumgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package. Out is
// where the computed equation is printed; it defaults to stdout.
type Module struct {
	Out io.Writer
}

// Input defines the arguments for the sum runner.
type Input struct {
	Alpha int `sggo:"alpha"`
	Bravo int `sggo:"bravo"`
}

// Deps carries the injected dependencies for the sum handler.
type Deps struct {
	Out io.Writer
}

// Output defines the data structure returned by the runner.
type Output struct {
	Sum int `cty:"sum"`
}

// OnRunSum is the handler for the 'sum' runner's on_run lifecycle event. It
// adds the two configured addends, prints the full equation, and returns the
// total for downstream steps.
func OnRunSum(ctx context.Context, deps *Deps, input *Input) (*Output, error) {
	logger := ctxlog.FromContext(ctx)

	total := input.Alpha + input.Bravo
	logger.Debug("Computed sum.", "alpha", input.Alpha, "bravo", input.Bravo, "sum", total)

	if _, err := fmt.Fprintf(deps.Out, "%d + %d = %d\n", input.Alpha, input.Bravo, total); err != nil {
		return nil, fmt.Errorf("failed to print sum: %w", err)
	}

	return &Output{Sum: total}, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	out := m.Out
	if out == nil {
		out = os.Stdout
	}
	r.RegisterRunner("OnRunSum", &registry.RegisteredRunner{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		NewDeps:   func() any { return &Deps{Out: out} },
		Fn:        OnRunSum,
	})
}
